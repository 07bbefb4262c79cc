package contracts

import (
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionData string) error
	Me(ctx context.Context, sessionData string) (*responses.UserProfile, error)
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, sessionData string) (*responses.Dashboard, error)
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, sessionData string, query *requests.DoctorQuery) ([]models.Doctor, int, error)
	GetDoctor(ctx context.Context, sessionData, doctorID string) (*models.Doctor, error)
	GetBookingOptions(ctx context.Context, sessionData, doctorID, date string) (*responses.BookingOptions, error)
	// RefreshDirectoryCache reloads the unfiltered doctor listing into the cache.
	RefreshDirectoryCache(ctx context.Context) (int, error)
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, sessionData string, request *requests.BookingSelection) (*models.Appointment, error)
	ListAppointments(ctx context.Context, sessionData string, query *requests.AppointmentQuery) ([]models.Appointment, int, error)
	UpdateAppointmentStatus(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
}

type PatientUsecase interface {
	ListPatients(ctx context.Context, sessionData string, query *requests.PatientQuery) ([]models.Patient, int, error)
	GetPatient(ctx context.Context, sessionData, patientID string) (*models.Patient, error)
	VerifyPatient(ctx context.Context, sessionData, patientID string) (*models.Patient, error)
	UpdatePatientStatus(ctx context.Context, sessionData, patientID string, request *requests.UpdatePatientStatus) (*models.Patient, error)
}

type MedicalRecordUsecase interface {
	ListMedicalRecords(ctx context.Context, sessionData string, query *requests.MedicalRecordQuery) ([]models.MedicalRecord, int, error)
	GetMedicalRecord(ctx context.Context, sessionData, recordID string) (*models.MedicalRecord, error)
}

type PrescriptionUsecase interface {
	ListPrescriptions(ctx context.Context, sessionData string, query *requests.PrescriptionQuery) ([]models.Prescription, int, error)
	GetPrescription(ctx context.Context, sessionData, prescriptionID string) (*models.Prescription, error)
	ExportPrescription(ctx context.Context, sessionData, prescriptionID string) (*responses.PrescriptionExport, error)
}
