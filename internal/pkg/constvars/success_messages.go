package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"
	GetMeSuccess  = "get profile successfully"
	HealthSuccess = "service is healthy"

	GetDashboardSuccessMessage          = "get dashboard successfully"
	GetDoctorsSuccessMessage            = "get doctors successfully"
	GetDoctorSuccessMessage             = "get doctor successfully"
	GetChamberTimesSuccessMessage       = "get chamber times successfully"
	GetAppointmentsSuccessMessage       = "get appointments successfully"
	CreateAppointmentSuccessMessage     = "appointment booked successfully"
	UpdateAppointmentStatusSuccess      = "appointment status updated successfully"
	GetPatientsSuccessMessage           = "get patients successfully"
	GetPatientSuccessMessage            = "get patient successfully"
	VerifyPatientSuccessMessage         = "patient verified successfully"
	UpdatePatientStatusSuccessMessage   = "patient status updated successfully"
	GetMedicalRecordsSuccessMessage     = "get medical records successfully"
	GetMedicalRecordSuccessMessage      = "get medical record successfully"
	GetPrescriptionsSuccessMessage      = "get prescriptions successfully"
	GetPrescriptionSuccessMessage       = "get prescription successfully"
	ExportPrescriptionSuccessMessage    = "prescription exported successfully"
	NoChamberTimesAvailableMessage      = "No chamber times available for this doctor"
	ChamberTimesFromOtherWeekdayMessage = "No chamber times on %s, showing the doctor's other chamber times"
)
