package responses

import "time"

type SlotAvailability struct {
	Date           time.Time `json:"date"`
	AvailableSlots []string  `json:"availableSlots"`
	BookedSlots    []string  `json:"bookedSlots"`
}
