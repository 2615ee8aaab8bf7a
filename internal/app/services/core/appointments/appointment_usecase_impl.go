package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"legalhub-service/internal/app/config"
	"legalhub-service/internal/app/contracts"
	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/dto/responses"
	"legalhub-service/internal/pkg/exceptions"
	"legalhub-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const maxConfirmationCodeAttempts = 5

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	LockService           contracts.LockerService
	NotificationPublisher contracts.NotificationPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	lockService contracts.LockerService,
	notificationPublisher contracts.NotificationPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			LockService:           lockService,
			NotificationPublisher: notificationPublisher,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotKey, request.TimeSlot),
	)

	appointmentDate, err := utils.ParseAppointmentDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	lockKey := fmt.Sprintf(constvars.AppointmentSlotLockKeyFormat,
		appointmentDate.Format(constvars.AppointmentDateLayout), request.TimeSlot)
	lockTTL := time.Duration(uc.InternalConfig.App.SlotLockTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotLockContended(fmt.Errorf("slot lock %s held by another booking", lockKey))
	}
	defer func() {
		if unlockErr := uc.LockService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.CreateAppointment error releasing slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	bookedSlots, err := uc.AppointmentRepository.FindBookedSlotsByDate(ctx, appointmentDate)
	if err != nil {
		return nil, err
	}
	for _, bookedSlot := range bookedSlots {
		if bookedSlot == request.TimeSlot {
			return nil, exceptions.ErrSlotAlreadyBooked(fmt.Errorf("slot %s on %s already booked",
				request.TimeSlot, appointmentDate.Format(constvars.AppointmentDateLayout)))
		}
	}

	now := time.Now().UTC()
	appointment := &models.Appointment{
		ServiceCategory: request.ServiceCategory,
		ServiceTitle:    request.ServiceTitle,
		ServicePrice:    request.ServicePrice,
		Date:            appointmentDate,
		TimeSlot:        request.TimeSlot,
		ClientName:      request.ClientName,
		ClientEmail:     request.ClientEmail,
		ClientPhone:     request.ClientPhone,
		Notes:           request.Notes,
		Status:          constvars.AppointmentStatusPending,
		Active:          true,
	}
	appointment.Touch(now)
	appointment.SyncSlotKey()

	codePrefix := constvars.ConfirmationCodePrefixLegal
	if request.ServiceCategory == constvars.ServiceCategoryCareer {
		codePrefix = constvars.ConfirmationCodePrefixCareer
	}

	// The unique index on confirmationNumber arbitrates collisions between
	// concurrent bookings; losing a race just means drawing a new code.
	for attempt := 0; attempt < maxConfirmationCodeAttempts; attempt++ {
		confirmationCode, err := utils.GenerateConfirmationCode(codePrefix)
		if err != nil {
			return nil, exceptions.ErrServerProcess(err)
		}
		appointment.ConfirmationCode = confirmationCode

		appointmentID, err := uc.AppointmentRepository.Insert(ctx, appointment)
		if err == nil {
			appointment.ID = appointmentID
			uc.Log.Info("appointmentUsecase.CreateAppointment booked",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.String(constvars.LoggingConfirmationCodeKey, confirmationCode),
			)
			uc.publishEvent(ctx, contracts.NotificationEventBooked, appointment)
			return appointment, nil
		}
		if errors.Is(err, ErrDuplicateConfirmationCode) {
			uc.Log.Warn("appointmentUsecase.CreateAppointment confirmation number collision, retrying",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingConfirmationCodeKey, confirmationCode),
			)
			continue
		}
		return nil, err
	}

	return nil, exceptions.ErrConfirmationCodeExhausted(
		fmt.Errorf("no unique confirmation number after %d attempts", maxConfirmationCodeAttempts))
}

func (uc *appointmentUsecase) FindAllAppointments(ctx context.Context, request *requests.ListAppointments) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAllAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.AppointmentRepository.FindAll(ctx, request)
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found", appointmentID))
	}
	return appointment, nil
}

func (uc *appointmentUsecase) FindAppointmentByConfirmationCode(ctx context.Context, confirmationCode string) (*models.Appointment, error) {
	// Codes are stored upper-case; accept whatever casing the client typed.
	confirmationCode = strings.ToUpper(confirmationCode)

	appointment, err := uc.AppointmentRepository.FindByConfirmationCode(ctx, confirmationCode)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrConfirmationCodeNotExist(fmt.Errorf("confirmation number %s not found", confirmationCode))
	}
	return appointment, nil
}

func (uc *appointmentUsecase) GetSlotAvailability(ctx context.Context, date string) (*responses.SlotAvailability, error) {
	appointmentDate, err := utils.ParseAppointmentDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	bookedSlots, err := uc.AppointmentRepository.FindBookedSlotsByDate(ctx, appointmentDate)
	if err != nil {
		return nil, err
	}

	bookedSet := make(map[string]bool, len(bookedSlots))
	for _, slot := range bookedSlots {
		bookedSet[slot] = true
	}

	availableSlots := make([]string, 0, len(constvars.AppointmentTimeSlots))
	for _, slot := range constvars.AppointmentTimeSlots {
		if !bookedSet[slot] {
			availableSlots = append(availableSlots, slot)
		}
	}

	return &responses.SlotAvailability{
		Date:           appointmentDate,
		AvailableSlots: availableSlots,
		BookedSlots:    bookedSlots,
	}, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	newDate := appointment.Date
	if request.Date != "" {
		newDate, err = utils.ParseAppointmentDate(request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
	}
	newTimeSlot := appointment.TimeSlot
	if request.TimeSlot != "" {
		newTimeSlot = request.TimeSlot
	}

	rescheduled := !newDate.Equal(appointment.Date) || newTimeSlot != appointment.TimeSlot

	if rescheduled && models.IsActiveStatus(appointment.Status) {
		lockKey := fmt.Sprintf(constvars.AppointmentSlotLockKeyFormat,
			newDate.Format(constvars.AppointmentDateLayout), newTimeSlot)
		lockTTL := time.Duration(uc.InternalConfig.App.SlotLockTTLInSeconds) * time.Second

		acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, exceptions.ErrSlotLockContended(fmt.Errorf("slot lock %s held by another booking", lockKey))
		}
		defer func() {
			if unlockErr := uc.LockService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
				uc.Log.Warn("appointmentUsecase.UpdateAppointment error releasing slot lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, lockKey),
					zap.Error(unlockErr),
				)
			}
		}()

		bookedSlots, err := uc.AppointmentRepository.FindBookedSlotsByDate(ctx, newDate)
		if err != nil {
			return nil, err
		}
		for _, bookedSlot := range bookedSlots {
			if bookedSlot == newTimeSlot {
				return nil, exceptions.ErrSlotAlreadyBooked(fmt.Errorf("slot %s on %s already booked",
					newTimeSlot, newDate.Format(constvars.AppointmentDateLayout)))
			}
		}
	}

	appointment.Date = newDate
	appointment.TimeSlot = newTimeSlot
	if request.ClientName != "" {
		appointment.ClientName = request.ClientName
	}
	if request.ClientEmail != "" {
		appointment.ClientEmail = request.ClientEmail
	}
	if request.ClientPhone != nil {
		appointment.ClientPhone = *request.ClientPhone
	}
	if request.Notes != nil {
		appointment.Notes = *request.Notes
	}
	if request.Status != "" {
		if !models.IsValidAppointmentStatus(request.Status) {
			return nil, exceptions.ErrInvalidAppointmentStatus(fmt.Errorf("unknown status %q", request.Status))
		}
		appointment.Status = request.Status
		if request.Status == constvars.AppointmentStatusCancelled {
			appointment.Active = false
		}
	}

	appointment.Touch(time.Now().UTC())
	appointment.SyncSlotKey()

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		return nil, err
	}

	if rescheduled {
		uc.publishEvent(ctx, contracts.NotificationEventRescheduled, appointment)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if !models.IsValidAppointmentStatus(request.Status) {
		return nil, exceptions.ErrInvalidAppointmentStatus(fmt.Errorf("unknown status %q", request.Status))
	}

	appointment, err := uc.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	appointment.Status = request.Status
	if request.Status == constvars.AppointmentStatusCancelled {
		appointment.Active = false
	} else {
		appointment.Active = true
	}

	appointment.Touch(time.Now().UTC())
	// Re-attaching the slot key on reactivation lets the unique index reject
	// the transition when the slot has been claimed in the meantime.
	appointment.SyncSlotKey()

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, contracts.NotificationEventStatusChanged, appointment)
	return appointment, nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.Active = false
	appointment.Touch(time.Now().UTC())
	appointment.SyncSlotKey()

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, contracts.NotificationEventStatusChanged, appointment)
	return appointment, nil
}

// publishEvent pushes a notification message best-effort; a broker outage
// must not fail the booking that triggered it.
func (uc *appointmentUsecase) publishEvent(ctx context.Context, eventName string, appointment *models.Appointment) {
	if uc.NotificationPublisher == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event := &contracts.AppointmentEvent{
		Event:            eventName,
		AppointmentID:    appointment.ID,
		ConfirmationCode: appointment.ConfirmationCode,
		ClientEmail:      appointment.ClientEmail,
		Date:             appointment.Date.Format(constvars.AppointmentDateLayout),
		TimeSlot:         appointment.TimeSlot,
		Status:           appointment.Status,
	}
	if err := uc.NotificationPublisher.PublishAppointmentEvent(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase.publishEvent error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}
