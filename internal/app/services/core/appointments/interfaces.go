package appointments

import (
	"context"
	"time"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	FindAllAppointments(ctx context.Context, request *requests.ListAppointments) ([]models.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAppointmentByConfirmationCode(ctx context.Context, confirmationCode string) (*models.Appointment, error)
	GetSlotAvailability(ctx context.Context, date string) (*responses.SlotAvailability, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error)
}

type AppointmentRepository interface {
	EnsureIndexes(ctx context.Context) error
	Insert(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAll(ctx context.Context, filter *requests.ListAppointments) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByConfirmationCode(ctx context.Context, confirmationCode string) (*models.Appointment, error)
	FindBookedSlotsByDate(ctx context.Context, date time.Time) ([]string, error)
	Update(ctx context.Context, appointment *models.Appointment) error
}
