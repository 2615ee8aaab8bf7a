package utils

import (
	"legalhub-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.ServiceCategory = strings.TrimSpace(strings.ToLower(input.ServiceCategory))
	input.ServiceTitle = strings.TrimSpace(input.ServiceTitle)
	input.Date = strings.TrimSpace(input.Date)
	input.TimeSlot = strings.TrimSpace(input.TimeSlot)
	input.ClientName = strings.TrimSpace(input.ClientName)
	input.ClientEmail = strings.TrimSpace(strings.ToLower(input.ClientEmail))
	input.ClientPhone = strings.TrimSpace(input.ClientPhone)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeUpdateAppointmentRequest(input *requests.UpdateAppointment) {
	input.Date = strings.TrimSpace(input.Date)
	input.TimeSlot = strings.TrimSpace(input.TimeSlot)
	input.ClientName = strings.TrimSpace(input.ClientName)
	input.ClientEmail = strings.TrimSpace(strings.ToLower(input.ClientEmail))
	input.Status = strings.TrimSpace(strings.ToLower(input.Status))
}

func SanitizeCreateJobRequest(input *requests.CreateJob) {
	input.Title = strings.TrimSpace(input.Title)
	input.Company = strings.TrimSpace(input.Company)
	input.Department = strings.TrimSpace(input.Department)
	input.Location = strings.TrimSpace(input.Location)
	input.ContactEmail = strings.TrimSpace(strings.ToLower(input.ContactEmail))

	input.Responsibilities = cleanWhiteSpaceFromEachStringOfAnArray(input.Responsibilities)
	input.Qualifications = cleanWhiteSpaceFromEachStringOfAnArray(input.Qualifications)
	input.Benefits = cleanWhiteSpaceFromEachStringOfAnArray(input.Benefits)
	input.Skills = cleanWhiteSpaceFromEachStringOfAnArray(input.Skills)
}

func SanitizeUpsertProfileRequest(input *requests.UpsertProfile) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Location = strings.TrimSpace(input.Location)
	input.Title = strings.TrimSpace(input.Title)
	input.Company = strings.TrimSpace(input.Company)
	input.Bio = strings.TrimSpace(input.Bio)
}
