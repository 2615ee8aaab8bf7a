package courses

import (
	"context"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/dto/requests"
)

type CourseUsecase interface {
	CreateCourse(ctx context.Context, request *requests.CreateCourse) (*models.Course, error)
	FindAllCourses(ctx context.Context, request *requests.ListCourses) ([]models.Course, error)
	FindCourseByID(ctx context.Context, courseID string) (*models.Course, error)
	UpdateCourse(ctx context.Context, courseID string, request *requests.UpdateCourse) (*models.Course, error)
	DeleteCourse(ctx context.Context, courseID string) error
}

type CourseRepository interface {
	Insert(ctx context.Context, course *models.Course) (string, error)
	FindAll(ctx context.Context, filter *requests.ListCourses) ([]models.Course, error)
	FindByID(ctx context.Context, courseID string) (*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Deactivate(ctx context.Context, courseID string) error
	IncrementStudents(ctx context.Context, courseID string) error
}
