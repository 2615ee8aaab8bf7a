package appointments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/exceptions"
	"legalhub-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.AppointmentBookedSuccess, appointment.ConfirmationCode)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, appointment)
}

func (ctrl *AppointmentController) FindAllAppointments(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListAppointments{
		Status:          r.URL.Query().Get("status"),
		ServiceCategory: r.URL.Query().Get("serviceType"),
		ClientEmail:     r.URL.Query().Get("email"),
		StartDate:       r.URL.Query().Get("startDate"),
		EndDate:         r.URL.Query().Get("endDate"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointments, err := ctrl.AppointmentUsecase.FindAllAppointments(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessListResponse(w, constvars.StatusOK, constvars.ResponseSuccess, len(appointments), appointments)
}

func (ctrl *AppointmentController) GetSlotAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(fmt.Errorf("query parameter date is required")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	availability, err := ctrl.AppointmentUsecase.GetSlotAvailability(ctx, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, availability)
}

func (ctrl *AppointmentController) FindAppointmentByConfirmationCode(w http.ResponseWriter, r *http.Request) {
	confirmationCode := chi.URLParam(r, "confirmationNumber")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.FindAppointmentByConfirmationCode(ctx, confirmationCode)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointment)
}

func (ctrl *AppointmentController) FindAppointmentByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointment)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.UpdateAppointment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, appointment)
}

func (ctrl *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.UpdateAppointmentStatus)
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

	appointment, err := ctrl.AppointmentUsecase.UpdateAppointmentStatus(ctx, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentStatusUpdatedSuccess, appointment)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, appointment)
}
