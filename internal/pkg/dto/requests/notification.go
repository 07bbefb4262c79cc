package requests

import "time"

type AppointmentNotification struct {
	Event           string    `json:"event"`
	AppointmentID   string    `json:"appointment_id"`
	DoctorID        string    `json:"doctor_id"`
	PatientID       string    `json:"patient_id"`
	AppointmentDate string    `json:"appointment_date"`
	TimeSlot        string    `json:"time_slot"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}
