package requests

type DoctorQuery struct {
	Search         string
	Specialization string
	Pagination
}

type BackendDoctorQuery struct {
	Search         string
	Specialization string
}
