package stats

import (
	"context"
	"net/http"
	"time"

	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type StatsController struct {
	Log          *zap.Logger
	StatsUsecase StatsUsecase
}

func NewStatsController(logger *zap.Logger, statsUsecase StatsUsecase) *StatsController {
	return &StatsController{
		Log:          logger,
		StatsUsecase: statsUsecase,
	}
}

func (ctrl *StatsController) GetHomepageStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := ctrl.StatsUsecase.GetHomepageStats(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, stats)
}
