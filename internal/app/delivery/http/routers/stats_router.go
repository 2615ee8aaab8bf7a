package routers

import (
	"legalhub-service/internal/app/services/core/stats"

	"github.com/go-chi/chi/v5"
)

func attachStatsRoutes(router chi.Router, statsController *stats.StatsController) {
	router.Get("/", statsController.GetHomepageStats)
}
