package requests

// BookingSelection is the patient's booking form. TimeSlot must be the value
// of one of the options offered for DoctorID on AppointmentDate.
type BookingSelection struct {
	DoctorID        string `json:"doctor_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02,not_past_date"`
	TimeSlot        string `json:"time_slot" validate:"required"`
	AppointmentType string `json:"appointment_type" validate:"required,oneof=new follow_up report"`
	Reason          string `json:"reason" validate:"max=1000"`
	Symptoms        string `json:"symptoms" validate:"max=1000"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

type AppointmentQuery struct {
	Status string
	Date   string
	Pagination
}

type BackendAppointmentQuery struct {
	PatientID string
	DoctorID  string
	Status    string
	Date      string
}

type BackendCreateAppointment struct {
	DoctorID        string `json:"doctor_id"`
	PatientID       string `json:"patient_id"`
	AppointmentDate string `json:"appointment_date"`
	TimeSlot        string `json:"time_slot"`
	AppointmentType string `json:"appointment_type"`
	Reason          string `json:"reason,omitempty"`
	Symptoms        string `json:"symptoms,omitempty"`
}

type BackendUpdateAppointmentStatus struct {
	Status string `json:"status"`
}
