package models

import "time"

type Prescription struct {
	ID            string           `json:"id"`
	AppointmentID string           `json:"appointment_id,omitempty"`
	Doctor        PrescribingActor `json:"doctor"`
	Patient       AppointmentActor `json:"patient"`
	IssuedDate    string           `json:"issued_date"`
	Diagnosis     string           `json:"diagnosis"`
	Medicines     []Medicine       `json:"medicines"`
	Tests         []string         `json:"tests,omitempty"`
	Advice        string           `json:"advice,omitempty"`
	FollowUpDate  string           `json:"follow_up_date,omitempty"`
	CreatedAt     *time.Time       `json:"created_at,omitempty"`
}

type PrescribingActor struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Specialization         string `json:"specialization,omitempty"`
	Qualification          string `json:"qualification,omitempty"`
	BMDCRegistrationNumber string `json:"bmdc_registration_number,omitempty"`
	ChamberAddress         string `json:"chamber_address,omitempty"`
}

type Medicine struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}
