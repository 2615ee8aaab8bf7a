package users

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

type UserController struct {
	Log         *zap.Logger
	UserUsecase UserUsecase
}

func NewUserController(logger *zap.Logger, userUsecase UserUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	allUsers, err := ctrl.UserUsecase.ListUsers(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessListResponse(w, constvars.StatusOK, constvars.ResponseSuccess, len(allUsers), allUsers)
}

func (ctrl *UserController) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertProfile)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpsertProfileRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, created, err := ctrl.UserUsecase.UpsertProfile(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if created {
		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ProfileCreatedSuccess, user)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedSuccess, user)
}

func (ctrl *UserController) GetProfileByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := ctrl.UserUsecase.GetProfileByEmail(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, user)
}

func (ctrl *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.UserUsecase.DeleteUser(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserDeletedSuccess, nil)
}

func (ctrl *UserController) SaveJob(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SaveJob)
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

	savedJob, err := ctrl.UserUsecase.SaveJob(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.JobSavedSuccess, savedJob)
}

func (ctrl *UserController) UnsaveJob(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	jobID := chi.URLParam(r, "jobID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.UserUsecase.UnsaveJob(ctx, email, jobID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.JobUnsavedSuccess, nil)
}

func (ctrl *UserController) GetSavedJobs(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	savedJobs, err := ctrl.UserUsecase.GetSavedJobs(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessListResponse(w, constvars.StatusOK, constvars.ResponseSuccess, len(savedJobs), savedJobs)
}

func (ctrl *UserController) EnrollCourse(w http.ResponseWriter, r *http.Request) {
	request := new(requests.EnrollCourse)
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

	enrollment, err := ctrl.UserUsecase.EnrollCourse(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CourseEnrolledSuccess, enrollment)
}

func (ctrl *UserController) GetEnrolledCourses(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	enrolledCourses, err := ctrl.UserUsecase.GetEnrolledCourses(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessListResponse(w, constvars.StatusOK, constvars.ResponseSuccess, len(enrolledCourses), enrolledCourses)
}

func (ctrl *UserController) UpdateCourseProgress(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	courseID := chi.URLParam(r, "courseID")

	request := new(requests.UpdateCourseProgress)
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

	enrollment, err := ctrl.UserUsecase.UpdateCourseProgress(ctx, email, courseID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProgressUpdatedSuccess, enrollment)
}

func (ctrl *UserController) GetUserStats(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	stats, err := ctrl.UserUsecase.GetUserStats(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, stats)
}
