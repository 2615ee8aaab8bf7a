package routers

import (
	"legalhub-service/internal/app/services/core/jobs"

	"github.com/go-chi/chi/v5"
)

func attachJobRoutes(router chi.Router, jobController *jobs.JobController) {
	router.Post("/", jobController.CreateJob)
	router.Get("/", jobController.FindAllJobs)
	router.Get("/{jobID}", jobController.FindJobByID)
	router.Put("/{jobID}", jobController.UpdateJob)
	router.Delete("/{jobID}", jobController.DeleteJob)
}
