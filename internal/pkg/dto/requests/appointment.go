package requests

type CreateAppointment struct {
	ServiceCategory string  `json:"serviceType" validate:"required,service_category"`
	ServiceTitle    string  `json:"serviceTitle" validate:"required"`
	ServicePrice    float64 `json:"servicePrice" validate:"gte=0"`
	Date            string  `json:"appointmentDate" validate:"required"`
	TimeSlot        string  `json:"appointmentTime" validate:"required,time_slot"`
	ClientName      string  `json:"clientName" validate:"required"`
	ClientEmail     string  `json:"clientEmail" validate:"required,email"`
	ClientPhone     string  `json:"clientPhone"`
	Notes           string  `json:"notes" validate:"max=500"`
}

type UpdateAppointment struct {
	Date        string  `json:"appointmentDate"`
	TimeSlot    string  `json:"appointmentTime" validate:"omitempty,time_slot"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail" validate:"omitempty,email"`
	ClientPhone *string `json:"clientPhone"`
	Notes       *string `json:"notes" validate:"omitempty,max=500"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required"`
}

// ListAppointments carries query-string filters, all optional.
type ListAppointments struct {
	Status          string
	ServiceCategory string
	ClientEmail     string
	StartDate       string
	EndDate         string
}
