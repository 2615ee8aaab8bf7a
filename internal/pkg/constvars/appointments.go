package constvars

// AppointmentTimeSlots is the fixed universe of bookable daily slots. Changing
// it changes the domain of valid appointment times everywhere.
var AppointmentTimeSlots = []string{
	"09:00 AM",
	"10:30 AM",
	"12:00 PM",
	"01:30 PM",
	"03:00 PM",
	"04:30 PM",
}

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	ServiceCategoryLegal  = "legal"
	ServiceCategoryCareer = "career"

	ConfirmationCodePrefixLegal  = "LGL"
	ConfirmationCodePrefixCareer = "CAR"
)

const (
	EnrollmentStatusEnrolled   = "enrolled"
	EnrollmentStatusInProgress = "in-progress"
	EnrollmentStatusCompleted  = "completed"
	EnrollmentStatusDropped    = "dropped"
)

const (
	AppointmentDateLayout = "2006-01-02"

	// AppointmentSlotLockKeyFormat is the redis key guarding one (date, slot)
	// pair: appointment_slot_lock:<yyyy-mm-dd>:<slot label>.
	AppointmentSlotLockKeyFormat = "appointment_slot_lock:%s:%s"
)
