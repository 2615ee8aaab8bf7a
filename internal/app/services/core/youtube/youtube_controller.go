package youtube

import (
	"context"
	"net/http"
	"time"

	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type YoutubeController struct {
	Log            *zap.Logger
	YoutubeUsecase YoutubeUsecase
}

func NewYoutubeController(logger *zap.Logger, youtubeUsecase YoutubeUsecase) *YoutubeController {
	return &YoutubeController{
		Log:            logger,
		YoutubeUsecase: youtubeUsecase,
	}
}

func (ctrl *YoutubeController) GetLatestVideos(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	feed, err := ctrl.YoutubeUsecase.GetLatestVideos(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, feed)
}
