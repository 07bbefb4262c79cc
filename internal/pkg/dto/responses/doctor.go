package responses

import "chamber-portal-service/internal/app/services/core/chambertime"

// BookingOptions is what the booking form shows for one doctor and date.
// Selectable is false when Options is empty and Message then explains why.
type BookingOptions struct {
	DoctorID   string                       `json:"doctor_id"`
	DoctorName string                       `json:"doctor_name"`
	Date       string                       `json:"date"`
	Weekday    string                       `json:"weekday"`
	Fallback   bool                         `json:"fallback"`
	Selectable bool                         `json:"selectable"`
	Message    string                       `json:"message,omitempty"`
	Options    []chambertime.TimeSlotOption `json:"options"`
}
