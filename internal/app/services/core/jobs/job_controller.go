package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/exceptions"
	"legalhub-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type JobController struct {
	Log        *zap.Logger
	JobUsecase JobUsecase
}

func NewJobController(logger *zap.Logger, jobUsecase JobUsecase) *JobController {
	return &JobController{
		Log:        logger,
		JobUsecase: jobUsecase,
	}
}

func (ctrl *JobController) CreateJob(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateJob)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateJobRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	job, err := ctrl.JobUsecase.CreateJob(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.JobCreatedSuccess, job)
}

func (ctrl *JobController) FindAllJobs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	request := &requests.ListJobs{
		Department:     r.URL.Query().Get("department"),
		Company:        r.URL.Query().Get("company"),
		EmploymentType: r.URL.Query().Get("employmentType"),
		Search:         r.URL.Query().Get("search"),
		Page:           page,
		Limit:          limit,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	jobs, total, err := ctrl.JobUsecase.FindAllJobs(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if request.Page < 1 {
		request.Page = 1
	}
	if request.Limit < 1 {
		request.Limit = 10
	}
	pagination := utils.BuildPaginationResponse(total, request.Page, request.Limit, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ResponseSuccess, pagination, jobs)
}

func (ctrl *JobController) FindJobByID(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	job, err := ctrl.JobUsecase.FindJobByID(ctx, jobID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, job)
}

func (ctrl *JobController) UpdateJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	request := new(requests.UpdateJob)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateJobRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	job, err := ctrl.JobUsecase.UpdateJob(ctx, jobID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.JobUpdatedSuccess, job)
}

func (ctrl *JobController) DeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.JobUsecase.DeleteJob(ctx, jobID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.JobDeletedSuccess, nil)
}
