package routers

import (
	"fmt"
	"net/http"
	"time"

	"legalhub-service/internal/app/config"
	"legalhub-service/internal/app/delivery/http/middlewares"
	"legalhub-service/internal/app/services/core/appointments"
	"legalhub-service/internal/app/services/core/courses"
	"legalhub-service/internal/app/services/core/jobs"
	"legalhub-service/internal/app/services/core/stats"
	"legalhub-service/internal/app/services/core/users"
	"legalhub-service/internal/app/services/core/youtube"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

var startedAt = time.Now()

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *appointments.AppointmentController,
	jobController *jobs.JobController,
	courseController *courses.CourseController,
	userController *users.UserController,
	statsController *stats.StatsController,
	youtubeController *youtube.YoutubeController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, map[string]string{
			"service": "legalhub-service",
			"version": internalConfig.App.Version,
		})
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, map[string]string{
			"status":  "ok",
			"version": internalConfig.App.Version,
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
		})
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, appointmentController)
		})

		r.Route("/jobs", func(r chi.Router) {
			attachJobRoutes(r, jobController)
		})

		r.Route("/courses", func(r chi.Router) {
			attachCourseRoutes(r, courseController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, userController)
		})

		r.Route("/stats", func(r chi.Router) {
			attachStatsRoutes(r, statsController)
		})

		r.Route("/youtube", func(r chi.Router) {
			attachYoutubeRoutes(r, youtubeController)
		})
	})
}
