package routers

import (
	"legalhub-service/internal/app/services/core/courses"

	"github.com/go-chi/chi/v5"
)

func attachCourseRoutes(router chi.Router, courseController *courses.CourseController) {
	router.Post("/", courseController.CreateCourse)
	router.Get("/", courseController.FindAllCourses)
	router.Get("/{courseID}", courseController.FindCourseByID)
	router.Put("/{courseID}", courseController.UpdateCourse)
	router.Delete("/{courseID}", courseController.DeleteCourse)
}
