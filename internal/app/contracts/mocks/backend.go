package mocks

import (
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAuthBackendClient struct {
	mock.Mock
}

func (m *MockAuthBackendClient) Login(ctx context.Context, request *requests.BackendLogin) (*responses.BackendLogin, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.BackendLogin)
	return response, args.Error(1)
}

type MockDoctorBackendClient struct {
	mock.Mock
}

func (m *MockDoctorBackendClient) ListDoctors(ctx context.Context, token string, query *requests.BackendDoctorQuery) ([]models.Doctor, error) {
	args := m.Called(ctx, token, query)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorBackendClient) FindDoctorByID(ctx context.Context, token, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, token, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

type MockAppointmentBackendClient struct {
	mock.Mock
}

func (m *MockAppointmentBackendClient) ListAppointments(ctx context.Context, token string, query *requests.BackendAppointmentQuery) ([]models.Appointment, error) {
	args := m.Called(ctx, token, query)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentBackendClient) FindAppointmentByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, token, appointmentID)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentBackendClient) CreateAppointment(ctx context.Context, token string, request *requests.BackendCreateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, token, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentBackendClient) UpdateAppointmentStatus(ctx context.Context, token, appointmentID string, request *requests.BackendUpdateAppointmentStatus) (*models.Appointment, error) {
	args := m.Called(ctx, token, appointmentID, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

type MockPatientBackendClient struct {
	mock.Mock
}

func (m *MockPatientBackendClient) ListPatients(ctx context.Context, token, doctorID string) ([]models.Patient, error) {
	args := m.Called(ctx, token, doctorID)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientBackendClient) FindPatientByID(ctx context.Context, token, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, token, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientBackendClient) VerifyPatient(ctx context.Context, token, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, token, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientBackendClient) UpdatePatientStatus(ctx context.Context, token, patientID string, request *requests.BackendPatientStatus) (*models.Patient, error) {
	args := m.Called(ctx, token, patientID, request)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

type MockStatisticsBackendClient struct {
	mock.Mock
}

func (m *MockStatisticsBackendClient) GetAdminStatistics(ctx context.Context, token string) (models.Statistics, error) {
	args := m.Called(ctx, token)
	stats, _ := args.Get(0).(models.Statistics)
	return stats, args.Error(1)
}

func (m *MockStatisticsBackendClient) GetDoctorStatistics(ctx context.Context, token, doctorID string) (models.Statistics, error) {
	args := m.Called(ctx, token, doctorID)
	stats, _ := args.Get(0).(models.Statistics)
	return stats, args.Error(1)
}

func (m *MockStatisticsBackendClient) GetPatientStatistics(ctx context.Context, token, patientID string) (models.Statistics, error) {
	args := m.Called(ctx, token, patientID)
	stats, _ := args.Get(0).(models.Statistics)
	return stats, args.Error(1)
}

type MockMedicalRecordBackendClient struct {
	mock.Mock
}

func (m *MockMedicalRecordBackendClient) ListMedicalRecords(ctx context.Context, token, patientID string) ([]models.MedicalRecord, error) {
	args := m.Called(ctx, token, patientID)
	records, _ := args.Get(0).([]models.MedicalRecord)
	return records, args.Error(1)
}

func (m *MockMedicalRecordBackendClient) FindMedicalRecordByID(ctx context.Context, token, recordID string) (*models.MedicalRecord, error) {
	args := m.Called(ctx, token, recordID)
	record, _ := args.Get(0).(*models.MedicalRecord)
	return record, args.Error(1)
}

type MockPrescriptionBackendClient struct {
	mock.Mock
}

func (m *MockPrescriptionBackendClient) ListPrescriptions(ctx context.Context, token, patientID, doctorID string) ([]models.Prescription, error) {
	args := m.Called(ctx, token, patientID, doctorID)
	prescriptions, _ := args.Get(0).([]models.Prescription)
	return prescriptions, args.Error(1)
}

func (m *MockPrescriptionBackendClient) FindPrescriptionByID(ctx context.Context, token, prescriptionID string) (*models.Prescription, error) {
	args := m.Called(ctx, token, prescriptionID)
	prescription, _ := args.Get(0).(*models.Prescription)
	return prescription, args.Error(1)
}
