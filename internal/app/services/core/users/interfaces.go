package users

import (
	"context"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UpsertProfile(ctx context.Context, request *requests.UpsertProfile) (*models.User, bool, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.User, error)
	DeleteUser(ctx context.Context, email string) error
	SaveJob(ctx context.Context, request *requests.SaveJob) (*models.SavedJob, error)
	UnsaveJob(ctx context.Context, email, jobID string) error
	GetSavedJobs(ctx context.Context, email string) ([]responses.SavedJobItem, error)
	EnrollCourse(ctx context.Context, request *requests.EnrollCourse) (*models.CourseEnrollment, error)
	GetEnrolledCourses(ctx context.Context, email string) ([]responses.EnrolledCourseItem, error)
	UpdateCourseProgress(ctx context.Context, email, courseID string, request *requests.UpdateCourseProgress) (*models.CourseEnrollment, error)
	GetUserStats(ctx context.Context, email string) (*responses.UserStats, error)
}

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (string, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID string) error
}

type SavedJobRepository interface {
	Insert(ctx context.Context, savedJob *models.SavedJob) (string, error)
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.SavedJob, error)
	FindByUser(ctx context.Context, userID string) ([]models.SavedJob, error)
	Delete(ctx context.Context, savedJobID string) error
	DeleteByUser(ctx context.Context, userID string) error
}

type EnrollmentRepository interface {
	Insert(ctx context.Context, enrollment *models.CourseEnrollment) (string, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID string) (*models.CourseEnrollment, error)
	FindByUser(ctx context.Context, userID string) ([]models.CourseEnrollment, error)
	Update(ctx context.Context, enrollment *models.CourseEnrollment) error
	CountCompletedByUser(ctx context.Context, userID string) (int, error)
	DeleteByUser(ctx context.Context, userID string) error
}
