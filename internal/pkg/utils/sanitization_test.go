package utils

import (
	"testing"

	"legalhub-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	request := &requests.CreateAppointment{
		ServiceCategory: "  Legal ",
		ServiceTitle:    " Contract Review ",
		Date:            " 2026-09-15 ",
		TimeSlot:        " 09:00 AM ",
		ClientName:      "  Asha Verma ",
		ClientEmail:     " Asha@Example.COM ",
		ClientPhone:     " +91 98765 43210 ",
		Notes:           "  urgent  ",
	}

	SanitizeCreateAppointmentRequest(request)

	assert.Equal(t, "legal", request.ServiceCategory)
	assert.Equal(t, "Contract Review", request.ServiceTitle)
	assert.Equal(t, "2026-09-15", request.Date)
	assert.Equal(t, "09:00 AM", request.TimeSlot)
	assert.Equal(t, "Asha Verma", request.ClientName)
	assert.Equal(t, "asha@example.com", request.ClientEmail)
	assert.Equal(t, "+91 98765 43210", request.ClientPhone)
	assert.Equal(t, "urgent", request.Notes)
}

func TestSanitizeCreateJobRequest(t *testing.T) {
	request := &requests.CreateJob{
		Title:            " Senior Associate ",
		Company:          " LegalHub ",
		Department:       " Litigation ",
		ContactEmail:     " Jobs@LegalHub.IN ",
		Responsibilities: []string{" draft pleadings ", "client calls  "},
		Skills:           []string{"  research "},
	}

	SanitizeCreateJobRequest(request)

	assert.Equal(t, "Senior Associate", request.Title)
	assert.Equal(t, "LegalHub", request.Company)
	assert.Equal(t, "jobs@legalhub.in", request.ContactEmail)
	assert.Equal(t, []string{"draft pleadings", "client calls"}, request.Responsibilities)
	assert.Equal(t, []string{"research"}, request.Skills)
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid booking passes", func(t *testing.T) {
		request := &requests.CreateAppointment{
			ServiceCategory: "legal",
			ServiceTitle:    "Contract Review",
			Date:            "2026-09-15",
			TimeSlot:        "09:00 AM",
			ClientName:      "Asha Verma",
			ClientEmail:     "asha@example.com",
		}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("unknown time slot fails", func(t *testing.T) {
		request := &requests.CreateAppointment{
			ServiceCategory: "legal",
			ServiceTitle:    "Contract Review",
			Date:            "2026-09-15",
			TimeSlot:        "09:15 AM",
			ClientName:      "Asha Verma",
			ClientEmail:     "asha@example.com",
		}
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("unknown service category fails", func(t *testing.T) {
		request := &requests.CreateAppointment{
			ServiceCategory: "tax",
			ServiceTitle:    "Filing",
			Date:            "2026-09-15",
			TimeSlot:        "09:00 AM",
			ClientName:      "Asha Verma",
			ClientEmail:     "asha@example.com",
		}
		assert.Error(t, ValidateStruct(request))
	})
}
