package courses

import (
	"context"
	"fmt"
	"sync"
	"time"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type courseUsecase struct {
	CourseRepository CourseRepository
	Log              *zap.Logger
}

var (
	courseUsecaseInstance CourseUsecase
	onceCourseUsecase     sync.Once
)

func NewCourseUsecase(courseRepository CourseRepository, logger *zap.Logger) CourseUsecase {
	onceCourseUsecase.Do(func() {
		instance := &courseUsecase{
			CourseRepository: courseRepository,
			Log:              logger,
		}
		courseUsecaseInstance = instance
	})
	return courseUsecaseInstance
}

func (uc *courseUsecase) CreateCourse(ctx context.Context, request *requests.CreateCourse) (*models.Course, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("courseUsecase.CreateCourse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	course := buildCourseModel(request)
	course.IsActive = true
	course.Touch(time.Now().UTC())

	courseID, err := uc.CourseRepository.Insert(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = courseID
	return course, nil
}

func (uc *courseUsecase) FindAllCourses(ctx context.Context, request *requests.ListCourses) ([]models.Course, error) {
	return uc.CourseRepository.FindAll(ctx, request)
}

func (uc *courseUsecase) FindCourseByID(ctx context.Context, courseID string) (*models.Course, error) {
	course, err := uc.CourseRepository.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, exceptions.ErrCourseNotExist(fmt.Errorf("course %s not found", courseID))
	}
	return course, nil
}

func (uc *courseUsecase) UpdateCourse(ctx context.Context, courseID string, request *requests.UpdateCourse) (*models.Course, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("courseUsecase.UpdateCourse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	course := buildCourseModel(request)
	course.ID = existing.ID
	course.IsActive = existing.IsActive
	course.CreatedAt = existing.CreatedAt
	course.Touch(time.Now().UTC())

	if err := uc.CourseRepository.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (uc *courseUsecase) DeleteCourse(ctx context.Context, courseID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("courseUsecase.DeleteCourse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.CourseRepository.Deactivate(ctx, courseID)
}

func buildCourseModel(request *requests.CreateCourse) *models.Course {
	course := &models.Course{
		Title:               request.Title,
		Description:         request.Description,
		DetailedDescription: request.DetailedDescription,
		Image:               request.Image,
		Duration:            request.Duration,
		Level:               request.Level,
		Rating:              request.Rating,
		Students:            request.Students,
		Discount:            request.Discount,
		Features:            request.Features,
		Category:            request.Category,
		VideoHours:          request.VideoHours,
		Resources:           request.Resources,
		Price: models.CoursePrice{
			Current:  request.Price.Current,
			Original: request.Price.Original,
			Currency: request.Price.Currency,
		},
	}
	if course.Level == "" {
		course.Level = "Beginner"
	}
	if request.Certified != nil {
		course.Certified = *request.Certified
	} else {
		course.Certified = true
	}
	for _, module := range request.Modules {
		course.Modules = append(course.Modules, models.CourseModule{
			Title:   module.Title,
			Lessons: module.Lessons,
		})
	}
	if request.Instructor != nil {
		course.Instructor = &models.CourseInstructor{
			Name:     request.Instructor.Name,
			Title:    request.Instructor.Title,
			Bio:      request.Instructor.Bio,
			Initials: request.Instructor.Initials,
		}
	}
	return course
}
