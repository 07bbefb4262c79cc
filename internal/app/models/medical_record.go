package models

import "time"

type MedicalRecord struct {
	ID          string           `json:"id"`
	Patient     AppointmentActor `json:"patient"`
	Doctor      AppointmentActor `json:"doctor"`
	VisitDate   string           `json:"visit_date"`
	Diagnosis   string           `json:"diagnosis"`
	Symptoms    string           `json:"symptoms,omitempty"`
	Treatment   string           `json:"treatment,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	Vitals      *Vitals          `json:"vitals,omitempty"`
	Attachments []string         `json:"attachments,omitempty"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"`
}

type Vitals struct {
	BloodPressure string  `json:"blood_pressure,omitempty"`
	HeartRate     int     `json:"heart_rate,omitempty"`
	Temperature   float64 `json:"temperature,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Height        float64 `json:"height,omitempty"`
}
