package models

import "time"

type Appointment struct {
	ID              string           `json:"id"`
	SerialNumber    int              `json:"serial_number,omitempty"`
	Doctor          AppointmentActor `json:"doctor"`
	Patient         AppointmentActor `json:"patient"`
	AppointmentDate string           `json:"appointment_date"`
	TimeSlot        string           `json:"time_slot"`
	AppointmentType string           `json:"appointment_type"`
	Reason          string           `json:"reason,omitempty"`
	Symptoms        string           `json:"symptoms,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       *time.Time       `json:"created_at,omitempty"`
}

type AppointmentActor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
	Phone          string `json:"phone,omitempty"`
}
