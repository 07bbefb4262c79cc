package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "CHMBR_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDateFormat          = "2006-01-02"
	AppEnvProduction       = "production"
	AppEnvDevelopment      = "development"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	AppointmentTypeNew      = "new"
	AppointmentTypeFollowUp = "follow_up"
	AppointmentTypeReport   = "report"
)

const (
	PatientStatusActive   = "active"
	PatientStatusInactive = "inactive"
)

const (
	URLParamDoctorID       = "doctorID"
	URLParamAppointmentID  = "appointmentID"
	URLParamPatientID      = "patientID"
	URLParamRecordID       = "recordID"
	URLParamPrescriptionID = "prescriptionID"
)
