package requests

type MedicalRecordQuery struct {
	PatientID string
	Pagination
}

type PrescriptionQuery struct {
	PatientID string
	DoctorID  string
	Pagination
}
