package constvars

// REST backend resource paths.
const (
	BackendPathLogin          = "/auth/login"
	BackendPathDoctors        = "/doctors"
	BackendPathAppointments   = "/appointments"
	BackendPathPatients       = "/patients"
	BackendPathMedicalRecords = "/medical-records"
	BackendPathPrescriptions  = "/prescriptions"
	BackendPathStatsAdmin     = "/stats/admin"
	BackendPathStatsDoctor    = "/stats/doctors/%s"
	BackendPathStatsPatient   = "/stats/patients/%s"
)

// Resource names used in error and log messages.
const (
	ResourceAuth          = "auth"
	ResourceDoctor        = "doctor"
	ResourceAppointment   = "appointment"
	ResourcePatient       = "patient"
	ResourceMedicalRecord = "medical record"
	ResourcePrescription  = "prescription"
	ResourceStatistics    = "statistics"
)

const (
	NotificationEventAppointmentBooked        = "appointment.booked"
	NotificationEventAppointmentStatusChanged = "appointment.status_changed"
)

const (
	MinioPrescriptionObjectFormat = "prescriptions/%s/%s.html"
)
