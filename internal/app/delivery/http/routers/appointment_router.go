package routers

import (
	"legalhub-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *appointments.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.FindAllAppointments)
	router.Get("/availability", appointmentController.GetSlotAvailability)
	router.Get("/confirmation/{confirmationNumber}", appointmentController.FindAppointmentByConfirmationCode)
	router.Get("/{appointmentID}", appointmentController.FindAppointmentByID)
	router.Put("/{appointmentID}", appointmentController.UpdateAppointment)
	router.Patch("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
	router.Delete("/{appointmentID}", appointmentController.CancelAppointment)
}
