package courses

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/exceptions"
	"legalhub-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CourseController struct {
	Log           *zap.Logger
	CourseUsecase CourseUsecase
}

func NewCourseController(logger *zap.Logger, courseUsecase CourseUsecase) *CourseController {
	return &CourseController{
		Log:           logger,
		CourseUsecase: courseUsecase,
	}
}

func (ctrl *CourseController) CreateCourse(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateCourse)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	course, err := ctrl.CourseUsecase.CreateCourse(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CourseCreatedSuccess, course)
}

func (ctrl *CourseController) FindAllCourses(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListCourses{
		Category: r.URL.Query().Get("category"),
		Level:    r.URL.Query().Get("level"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	courses, err := ctrl.CourseUsecase.FindAllCourses(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessListResponse(w, constvars.StatusOK, constvars.ResponseSuccess, len(courses), courses)
}

func (ctrl *CourseController) FindCourseByID(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	course, err := ctrl.CourseUsecase.FindCourseByID(ctx, courseID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, course)
}

func (ctrl *CourseController) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	request := new(requests.UpdateCourse)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	course, err := ctrl.CourseUsecase.UpdateCourse(ctx, courseID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CourseUpdatedSuccess, course)
}

func (ctrl *CourseController) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.CourseUsecase.DeleteCourse(ctx, courseID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CourseDeletedSuccess, nil)
}
