package requests

type PatientQuery struct {
	Search   string
	Verified *bool
	Status   string
	Pagination
}

type UpdatePatientStatus struct {
	Active *bool `json:"active" validate:"required"`
}

type BackendPatientStatus struct {
	IsActive bool `json:"is_active"`
}
