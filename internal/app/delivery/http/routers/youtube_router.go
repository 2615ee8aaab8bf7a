package routers

import (
	"legalhub-service/internal/app/services/core/youtube"

	"github.com/go-chi/chi/v5"
)

func attachYoutubeRoutes(router chi.Router, youtubeController *youtube.YoutubeController) {
	router.Get("/videos", youtubeController.GetLatestVideos)
}
