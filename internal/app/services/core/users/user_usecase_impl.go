package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/app/services/core/appointments"
	"legalhub-service/internal/app/services/core/courses"
	"legalhub-service/internal/app/services/core/jobs"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/dto/responses"
	"legalhub-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository        UserRepository
	SavedJobRepository    SavedJobRepository
	EnrollmentRepository  EnrollmentRepository
	JobRepository         jobs.JobRepository
	CourseRepository      courses.CourseRepository
	AppointmentRepository appointments.AppointmentRepository
	Log                   *zap.Logger
}

var (
	userUsecaseInstance UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository UserRepository,
	savedJobRepository SavedJobRepository,
	enrollmentRepository EnrollmentRepository,
	jobRepository jobs.JobRepository,
	courseRepository courses.CourseRepository,
	appointmentRepository appointments.AppointmentRepository,
	logger *zap.Logger,
) UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository:        userRepository,
			SavedJobRepository:    savedJobRepository,
			EnrollmentRepository:  enrollmentRepository,
			JobRepository:         jobRepository,
			CourseRepository:      courseRepository,
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

// UpsertProfile creates or refreshes the profile keyed by email. The second
// return value reports whether a new profile was created.
func (uc *userUsecase) UpsertProfile(ctx context.Context, request *requests.UpsertProfile) (*models.User, bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpsertProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now().UTC()
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		user := &models.User{
			Email:     request.Email,
			FirstName: request.FirstName,
			LastName:  request.LastName,
			Phone:     request.Phone,
			Location:  request.Location,
			Title:     request.Title,
			Company:   request.Company,
			Avatar:    request.Avatar,
			Bio:       request.Bio,
		}
		user.Touch(now)
		userID, err := uc.UserRepository.Insert(ctx, user)
		if err != nil {
			return nil, false, err
		}
		user.ID = userID
		return user, true, nil
	}

	existing.FirstName = request.FirstName
	existing.LastName = request.LastName
	existing.Phone = request.Phone
	existing.Location = request.Location
	existing.Title = request.Title
	existing.Company = request.Company
	if request.Avatar != "" {
		existing.Avatar = request.Avatar
	}
	existing.Bio = request.Bio
	existing.Touch(now)

	if err := uc.UserRepository.Update(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (uc *userUsecase) GetProfileByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %s not found", email))
	}
	return user, nil
}

// DeleteUser removes the profile together with its saved jobs and enrollments.
func (uc *userUsecase) DeleteUser(ctx context.Context, email string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.GetProfileByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := uc.SavedJobRepository.DeleteByUser(ctx, user.ID); err != nil {
		return err
	}
	if err := uc.EnrollmentRepository.DeleteByUser(ctx, user.ID); err != nil {
		return err
	}
	return uc.UserRepository.Delete(ctx, user.ID)
}

func (uc *userUsecase) SaveJob(ctx context.Context, request *requests.SaveJob) (*models.SavedJob, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.SaveJob called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.GetProfileByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	job, err := uc.JobRepository.FindByID(ctx, request.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, exceptions.ErrJobNotExist(fmt.Errorf("job %s not found", request.JobID))
	}

	existing, err := uc.SavedJobRepository.FindByUserAndJob(ctx, user.ID, request.JobID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrJobAlreadySaved(fmt.Errorf("job %s already saved by user %s", request.JobID, user.ID))
	}

	savedJob := &models.SavedJob{
		UserID: user.ID,
		JobID:  request.JobID,
	}
	savedJob.Touch(time.Now().UTC())

	savedJobID, err := uc.SavedJobRepository.Insert(ctx, savedJob)
	if err != nil {
		return nil, err
	}
	savedJob.ID = savedJobID
	return savedJob, nil
}

func (uc *userUsecase) UnsaveJob(ctx context.Context, email, jobID string) error {
	user, err := uc.GetProfileByEmail(ctx, email)
	if err != nil {
		return err
	}

	savedJob, err := uc.SavedJobRepository.FindByUserAndJob(ctx, user.ID, jobID)
	if err != nil {
		return err
	}
	if savedJob == nil {
		return exceptions.ErrSavedJobNotExist(fmt.Errorf("job %s not saved by user %s", jobID, user.ID))
	}
	return uc.SavedJobRepository.Delete(ctx, savedJob.ID)
}

func (uc *userUsecase) GetSavedJobs(ctx context.Context, email string) ([]responses.SavedJobItem, error) {
	user, err := uc.GetProfileByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	savedJobs, err := uc.SavedJobRepository.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	items := make([]responses.SavedJobItem, 0, len(savedJobs))
	for _, savedJob := range savedJobs {
		job, err := uc.JobRepository.FindByID(ctx, savedJob.JobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			// The job was removed after being saved; skip the orphan.
			continue
		}
		items = append(items, responses.SavedJobItem{
			Job:        *job,
			SavedAt:    savedJob.CreatedAt,
			SavedJobID: savedJob.ID,
		})
	}
	return items, nil
}

func (uc *userUsecase) EnrollCourse(ctx context.Context, request *requests.EnrollCourse) (*models.CourseEnrollment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.EnrollCourse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.GetProfileByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	course, err := uc.CourseRepository.FindByID(ctx, request.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, exceptions.ErrCourseNotExist(fmt.Errorf("course %s not found", request.CourseID))
	}

	existing, err := uc.EnrollmentRepository.FindByUserAndCourse(ctx, user.ID, request.CourseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrAlreadyEnrolled(fmt.Errorf("user %s already enrolled in course %s", user.ID, request.CourseID))
	}

	enrollment := &models.CourseEnrollment{
		UserID:   user.ID,
		CourseID: request.CourseID,
		Progress: 0,
		Status:   constvars.EnrollmentStatusEnrolled,
	}
	enrollment.Touch(time.Now().UTC())

	enrollmentID, err := uc.EnrollmentRepository.Insert(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	enrollment.ID = enrollmentID

	if err := uc.CourseRepository.IncrementStudents(ctx, request.CourseID); err != nil {
		uc.Log.Warn("userUsecase.EnrollCourse error incrementing course students",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return enrollment, nil
}

func (uc *userUsecase) GetEnrolledCourses(ctx context.Context, email string) ([]responses.EnrolledCourseItem, error) {
	user, err := uc.GetProfileByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	enrollments, err := uc.EnrollmentRepository.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	items := make([]responses.EnrolledCourseItem, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, err := uc.CourseRepository.FindByID(ctx, enrollment.CourseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			continue
		}
		items = append(items, responses.EnrolledCourseItem{
			Course:           *course,
			Progress:         enrollment.Progress,
			EnrollmentStatus: enrollment.Status,
			EnrolledAt:       enrollment.CreatedAt,
			CompletedAt:      enrollment.CompletedAt,
			EnrollmentID:     enrollment.ID,
		})
	}
	return items, nil
}

func (uc *userUsecase) UpdateCourseProgress(ctx context.Context, email, courseID string, request *requests.UpdateCourseProgress) (*models.CourseEnrollment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateCourseProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.GetProfileByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	enrollment, err := uc.EnrollmentRepository.FindByUserAndCourse(ctx, user.ID, courseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, exceptions.ErrEnrollmentNotExist(fmt.Errorf("user %s not enrolled in course %s", user.ID, courseID))
	}

	now := time.Now().UTC()
	enrollment.ApplyProgress(*request.Progress, now)
	enrollment.Touch(now)

	if err := uc.EnrollmentRepository.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (uc *userUsecase) GetUserStats(ctx context.Context, email string) (*responses.UserStats, error) {
	user, err := uc.GetProfileByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	coursesCompleted, err := uc.EnrollmentRepository.CountCompletedByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	userAppointments, err := uc.AppointmentRepository.FindAll(ctx, &requests.ListAppointments{ClientEmail: email})
	if err != nil {
		return nil, err
	}
	consultations := 0
	for _, appointment := range userAppointments {
		if appointment.Status != constvars.AppointmentStatusCancelled {
			consultations++
		}
	}

	savedJobs, err := uc.SavedJobRepository.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &responses.UserStats{
		CoursesCompleted: coursesCompleted,
		ApplicationsSent: len(savedJobs),
		Consultations:    consultations,
		Certificates:     coursesCompleted,
	}, nil
}
