package models

import (
	"fmt"
	"legalhub-service/internal/pkg/constvars"
	"time"
)

type Appointment struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	ServiceCategory  string    `json:"serviceType" bson:"serviceType"`
	ServiceTitle     string    `json:"serviceTitle" bson:"serviceTitle"`
	ServicePrice     float64   `json:"servicePrice" bson:"servicePrice"`
	Date             time.Time `json:"appointmentDate" bson:"appointmentDate"`
	TimeSlot         string    `json:"appointmentTime" bson:"appointmentTime"`
	ClientName       string    `json:"clientName" bson:"clientName"`
	ClientEmail      string    `json:"clientEmail" bson:"clientEmail"`
	ClientPhone      string    `json:"clientPhone,omitempty" bson:"clientPhone,omitempty"`
	Notes            string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Status           string    `json:"status" bson:"status"`
	ConfirmationCode string    `json:"confirmationNumber" bson:"confirmationNumber"`
	Active           bool      `json:"isActive" bson:"isActive"`

	// SlotKey is present only while the appointment occupies its slot
	// (status pending or confirmed). A unique partial index on it makes the
	// insert or update the commit point for the no-double-booking invariant.
	SlotKey string `json:"-" bson:"slotKey,omitempty"`

	TimeModel `bson:",inline"`
}

// IsActiveStatus reports whether a status value occupies a slot.
func IsActiveStatus(status string) bool {
	return status == constvars.AppointmentStatusPending || status == constvars.AppointmentStatusConfirmed
}

// IsValidAppointmentStatus reports whether status is in the enumerated set.
func IsValidAppointmentStatus(status string) bool {
	switch status {
	case constvars.AppointmentStatusPending,
		constvars.AppointmentStatusConfirmed,
		constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusCancelled:
		return true
	}
	return false
}

// BuildSlotKey derives the conflict key for a (date, slot) pair.
func BuildSlotKey(date time.Time, timeSlot string) string {
	return fmt.Sprintf("%s|%s", date.Format(constvars.AppointmentDateLayout), timeSlot)
}

// SyncSlotKey attaches or detaches the slot key according to status.
func (a *Appointment) SyncSlotKey() {
	if IsActiveStatus(a.Status) {
		a.SlotKey = BuildSlotKey(a.Date, a.TimeSlot)
		return
	}
	a.SlotKey = ""
}
