package contracts

import "context"

const (
	NotificationEventBooked        = "appointment.booked"
	NotificationEventRescheduled   = "appointment.rescheduled"
	NotificationEventStatusChanged = "appointment.status_changed"
)

// AppointmentEvent is the payload published to the notification queue.
type AppointmentEvent struct {
	Event            string `json:"event"`
	AppointmentID    string `json:"appointment_id"`
	ConfirmationCode string `json:"confirmation_code"`
	ClientEmail      string `json:"client_email"`
	Date             string `json:"date"`
	TimeSlot         string `json:"time_slot"`
	Status           string `json:"status"`
}

type NotificationPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error
}
