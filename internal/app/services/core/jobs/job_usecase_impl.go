package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/exceptions"
	"legalhub-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type jobUsecase struct {
	JobRepository JobRepository
	Log           *zap.Logger
}

var (
	jobUsecaseInstance JobUsecase
	onceJobUsecase     sync.Once
)

func NewJobUsecase(jobRepository JobRepository, logger *zap.Logger) JobUsecase {
	onceJobUsecase.Do(func() {
		instance := &jobUsecase{
			JobRepository: jobRepository,
			Log:           logger,
		}
		jobUsecaseInstance = instance
	})
	return jobUsecaseInstance
}

func (uc *jobUsecase) CreateJob(ctx context.Context, request *requests.CreateJob) (*models.Job, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("jobUsecase.CreateJob called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	job := buildJobModel(request)
	job.IsActive = true
	job.Touch(time.Now().UTC())

	jobID, err := uc.JobRepository.Insert(ctx, job)
	if err != nil {
		return nil, err
	}
	job.ID = jobID
	return job, nil
}

func (uc *jobUsecase) FindAllJobs(ctx context.Context, request *requests.ListJobs) ([]models.Job, int, error) {
	return uc.JobRepository.FindAll(ctx, request)
}

func (uc *jobUsecase) FindJobByID(ctx context.Context, jobID string) (*models.Job, error) {
	job, err := uc.JobRepository.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, exceptions.ErrJobNotExist(fmt.Errorf("job %s not found", jobID))
	}
	return job, nil
}

func (uc *jobUsecase) UpdateJob(ctx context.Context, jobID string, request *requests.UpdateJob) (*models.Job, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("jobUsecase.UpdateJob called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job := buildJobModel(request)
	job.ID = existing.ID
	job.IsActive = existing.IsActive
	job.CreatedAt = existing.CreatedAt
	job.Touch(time.Now().UTC())

	if err := uc.JobRepository.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (uc *jobUsecase) DeleteJob(ctx context.Context, jobID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("jobUsecase.DeleteJob called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.JobRepository.Deactivate(ctx, jobID)
}

func buildJobModel(request *requests.CreateJob) *models.Job {
	job := &models.Job{
		Title:               request.Title,
		Company:             request.Company,
		Department:          request.Department,
		Description:         request.Description,
		DetailedDescription: request.DetailedDescription,
		Responsibilities:    request.Responsibilities,
		Qualifications:      request.Qualifications,
		Benefits:            request.Benefits,
		Location:            request.Location,
		WorkMode:            request.WorkMode,
		Skills:              request.Skills,
		EmploymentType:      request.EmploymentType,
		ContactEmail:        request.ContactEmail,
		ContactPhone:        request.ContactPhone,
		CompanyWebsite:      request.CompanyWebsite,
		NumberOfOpenings:    request.NumberOfOpenings,
		Education:           request.Education,
	}
	if job.WorkMode == "" {
		job.WorkMode = "On-site"
	}
	if job.EmploymentType == "" {
		job.EmploymentType = "Full-time"
	}
	if job.NumberOfOpenings == 0 {
		job.NumberOfOpenings = 1
	}
	if request.Salary != nil {
		job.Salary = &models.SalaryRange{
			Min:      request.Salary.Min,
			Max:      request.Salary.Max,
			Currency: request.Salary.Currency,
		}
	}
	if request.ExperienceRequired != nil {
		job.ExperienceRequired = &models.ExperienceRange{
			Min: request.ExperienceRequired.Min,
			Max: request.ExperienceRequired.Max,
		}
	}
	if request.ApplicationDeadline != "" {
		if deadline, err := utils.ParseAppointmentDate(request.ApplicationDeadline); err == nil {
			job.ApplicationDeadline = &deadline
		}
	}
	return job
}
