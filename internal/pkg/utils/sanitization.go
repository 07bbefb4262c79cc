package utils

import (
	"chamber-portal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

// SanitizeBookingSelection trims the form fields. TimeSlot is only trimmed so
// it still matches an offered option value exactly.
func SanitizeBookingSelection(input *requests.BookingSelection) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.TimeSlot = strings.TrimSpace(input.TimeSlot)
	input.AppointmentType = strings.ToLower(strings.TrimSpace(input.AppointmentType))
	input.Reason = strings.TrimSpace(input.Reason)
	input.Symptoms = strings.TrimSpace(input.Symptoms)
}

func SanitizeUpdateAppointmentStatus(input *requests.UpdateAppointmentStatus) {
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
}
