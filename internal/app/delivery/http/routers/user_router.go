package routers

import (
	"legalhub-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, userController *users.UserController) {
	router.Get("/", userController.ListUsers)
	router.Post("/profile", userController.UpsertProfile)
	router.Get("/profile/{email}", userController.GetProfileByEmail)
	router.Delete("/profile/{email}", userController.DeleteUser)
	router.Post("/save-job", userController.SaveJob)
	router.Delete("/save-job/{email}/{jobID}", userController.UnsaveJob)
	router.Get("/saved-jobs/{email}", userController.GetSavedJobs)
	router.Post("/enroll-course", userController.EnrollCourse)
	router.Get("/enrolled-courses/{email}", userController.GetEnrolledCourses)
	router.Put("/course-progress/{email}/{courseID}", userController.UpdateCourseProgress)
	router.Get("/stats/{email}", userController.GetUserStats)
}
