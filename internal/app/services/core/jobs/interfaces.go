package jobs

import (
	"context"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/dto/requests"
)

type JobUsecase interface {
	CreateJob(ctx context.Context, request *requests.CreateJob) (*models.Job, error)
	FindAllJobs(ctx context.Context, request *requests.ListJobs) ([]models.Job, int, error)
	FindJobByID(ctx context.Context, jobID string) (*models.Job, error)
	UpdateJob(ctx context.Context, jobID string, request *requests.UpdateJob) (*models.Job, error)
	DeleteJob(ctx context.Context, jobID string) error
}

type JobRepository interface {
	Insert(ctx context.Context, job *models.Job) (string, error)
	FindAll(ctx context.Context, filter *requests.ListJobs) ([]models.Job, int, error)
	FindByID(ctx context.Context, jobID string) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Deactivate(ctx context.Context, jobID string) error
}
