package utils

import (
	"chamber-portal-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	nowFunc  = time.Now
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("not_past_date", validateNotPastDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateNotPastDate accepts today and later, in the service's local zone.
func validateNotPastDate(fl validator.FieldLevel) bool {
	date, err := time.ParseInLocation(constvars.AppDateFormat, fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	now := nowFunc().In(time.Local)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !date.Before(today)
}
