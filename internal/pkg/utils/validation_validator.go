package utils

import (
	"legalhub-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("time_slot", validateTimeSlot)
	validate.RegisterValidation("service_category", validateServiceCategory)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTimeSlot(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, slot := range constvars.AppointmentTimeSlots {
		if value == slot {
			return true
		}
	}
	return false
}

func validateServiceCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.ServiceCategoryLegal || value == constvars.ServiceCategoryCareer
}
