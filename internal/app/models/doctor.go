package models

type Doctor struct {
	ID                     string             `json:"id"`
	UserID                 string             `json:"user_id,omitempty"`
	Name                   string             `json:"name"`
	Email                  string             `json:"email,omitempty"`
	Phone                  string             `json:"phone,omitempty"`
	Specialization         string             `json:"specialization"`
	Qualification          string             `json:"qualification,omitempty"`
	BMDCRegistrationNumber string             `json:"bmdc_registration_number,omitempty"`
	ConsultationFee        float64            `json:"consultation_fee,omitempty"`
	ChamberAddress         string             `json:"chamber_address,omitempty"`
	ChamberTime            DoctorAvailability `json:"chamber_time"`
	IsVerified             bool               `json:"is_verified"`
}
