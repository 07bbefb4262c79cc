package contracts

import (
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/dto/responses"
	"context"
)

// Backend clients take the caller's backend bearer token. An empty token
// sends the request without an Authorization header.

type AuthBackendClient interface {
	Login(ctx context.Context, request *requests.BackendLogin) (*responses.BackendLogin, error)
}

type DoctorBackendClient interface {
	ListDoctors(ctx context.Context, token string, query *requests.BackendDoctorQuery) ([]models.Doctor, error)
	FindDoctorByID(ctx context.Context, token, doctorID string) (*models.Doctor, error)
}

type AppointmentBackendClient interface {
	ListAppointments(ctx context.Context, token string, query *requests.BackendAppointmentQuery) ([]models.Appointment, error)
	FindAppointmentByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, token string, request *requests.BackendCreateAppointment) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, token, appointmentID string, request *requests.BackendUpdateAppointmentStatus) (*models.Appointment, error)
}

type PatientBackendClient interface {
	ListPatients(ctx context.Context, token, doctorID string) ([]models.Patient, error)
	FindPatientByID(ctx context.Context, token, patientID string) (*models.Patient, error)
	VerifyPatient(ctx context.Context, token, patientID string) (*models.Patient, error)
	UpdatePatientStatus(ctx context.Context, token, patientID string, request *requests.BackendPatientStatus) (*models.Patient, error)
}

type StatisticsBackendClient interface {
	GetAdminStatistics(ctx context.Context, token string) (models.Statistics, error)
	GetDoctorStatistics(ctx context.Context, token, doctorID string) (models.Statistics, error)
	GetPatientStatistics(ctx context.Context, token, patientID string) (models.Statistics, error)
}

type MedicalRecordBackendClient interface {
	ListMedicalRecords(ctx context.Context, token, patientID string) ([]models.MedicalRecord, error)
	FindMedicalRecordByID(ctx context.Context, token, recordID string) (*models.MedicalRecord, error)
}

type PrescriptionBackendClient interface {
	ListPrescriptions(ctx context.Context, token, patientID, doctorID string) ([]models.Prescription, error)
	FindPrescriptionByID(ctx context.Context, token, prescriptionID string) (*models.Prescription, error)
}
