package models

import (
	"testing"
	"time"

	"legalhub-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestSyncSlotKey(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("active statuses hold the slot key", func(t *testing.T) {
		for _, status := range []string{constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed} {
			appointment := &Appointment{Date: date, TimeSlot: "09:00 AM", Status: status}
			appointment.SyncSlotKey()
			assert.Equal(t, "2026-09-15|09:00 AM", appointment.SlotKey, "status %s", status)
		}
	})

	t.Run("terminal statuses release the slot key", func(t *testing.T) {
		for _, status := range []string{constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled} {
			appointment := &Appointment{Date: date, TimeSlot: "09:00 AM", Status: status}
			appointment.SlotKey = "2026-09-15|09:00 AM"
			appointment.SyncSlotKey()
			assert.Empty(t, appointment.SlotKey, "status %s", status)
		}
	})
}

func TestIsValidAppointmentStatus(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "completed", "cancelled"} {
		assert.True(t, IsValidAppointmentStatus(status), status)
	}
	for _, status := range []string{"", "archived", "Pending", "done"} {
		assert.False(t, IsValidAppointmentStatus(status), status)
	}
}
