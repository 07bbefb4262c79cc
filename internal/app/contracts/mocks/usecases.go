package mocks

import (
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionData string) error {
	args := m.Called(ctx, sessionData)
	return args.Error(0)
}

func (m *MockAuthUsecase) Me(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	args := m.Called(ctx, sessionData)
	response, _ := args.Get(0).(*responses.UserProfile)
	return response, args.Error(1)
}

type MockDashboardUsecase struct {
	mock.Mock
}

func (m *MockDashboardUsecase) GetDashboard(ctx context.Context, sessionData string) (*responses.Dashboard, error) {
	args := m.Called(ctx, sessionData)
	response, _ := args.Get(0).(*responses.Dashboard)
	return response, args.Error(1)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) ListDoctors(ctx context.Context, sessionData string, query *requests.DoctorQuery) ([]models.Doctor, int, error) {
	args := m.Called(ctx, sessionData, query)
	doctors, _ := args.Get(0).([]models.Doctor)
	return doctors, args.Int(1), args.Error(2)
}

func (m *MockDoctorUsecase) GetDoctor(ctx context.Context, sessionData, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, sessionData, doctorID)
	doctor, _ := args.Get(0).(*models.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorUsecase) GetBookingOptions(ctx context.Context, sessionData, doctorID, date string) (*responses.BookingOptions, error) {
	args := m.Called(ctx, sessionData, doctorID, date)
	response, _ := args.Get(0).(*responses.BookingOptions)
	return response, args.Error(1)
}

func (m *MockDoctorUsecase) RefreshDirectoryCache(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, sessionData string, request *requests.BookingSelection) (*models.Appointment, error) {
	args := m.Called(ctx, sessionData, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) ListAppointments(ctx context.Context, sessionData string, query *requests.AppointmentQuery) ([]models.Appointment, int, error) {
	args := m.Called(ctx, sessionData, query)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Int(1), args.Error(2)
}

func (m *MockAppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	args := m.Called(ctx, sessionData, appointmentID, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) ListPatients(ctx context.Context, sessionData string, query *requests.PatientQuery) ([]models.Patient, int, error) {
	args := m.Called(ctx, sessionData, query)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Int(1), args.Error(2)
}

func (m *MockPatientUsecase) GetPatient(ctx context.Context, sessionData, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, sessionData, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) VerifyPatient(ctx context.Context, sessionData, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, sessionData, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) UpdatePatientStatus(ctx context.Context, sessionData, patientID string, request *requests.UpdatePatientStatus) (*models.Patient, error) {
	args := m.Called(ctx, sessionData, patientID, request)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

type MockMedicalRecordUsecase struct {
	mock.Mock
}

func (m *MockMedicalRecordUsecase) ListMedicalRecords(ctx context.Context, sessionData string, query *requests.MedicalRecordQuery) ([]models.MedicalRecord, int, error) {
	args := m.Called(ctx, sessionData, query)
	records, _ := args.Get(0).([]models.MedicalRecord)
	return records, args.Int(1), args.Error(2)
}

func (m *MockMedicalRecordUsecase) GetMedicalRecord(ctx context.Context, sessionData, recordID string) (*models.MedicalRecord, error) {
	args := m.Called(ctx, sessionData, recordID)
	record, _ := args.Get(0).(*models.MedicalRecord)
	return record, args.Error(1)
}

type MockPrescriptionUsecase struct {
	mock.Mock
}

func (m *MockPrescriptionUsecase) ListPrescriptions(ctx context.Context, sessionData string, query *requests.PrescriptionQuery) ([]models.Prescription, int, error) {
	args := m.Called(ctx, sessionData, query)
	prescriptions, _ := args.Get(0).([]models.Prescription)
	return prescriptions, args.Int(1), args.Error(2)
}

func (m *MockPrescriptionUsecase) GetPrescription(ctx context.Context, sessionData, prescriptionID string) (*models.Prescription, error) {
	args := m.Called(ctx, sessionData, prescriptionID)
	prescription, _ := args.Get(0).(*models.Prescription)
	return prescription, args.Error(1)
}

func (m *MockPrescriptionUsecase) ExportPrescription(ctx context.Context, sessionData, prescriptionID string) (*responses.PrescriptionExport, error) {
	args := m.Called(ctx, sessionData, prescriptionID)
	response, _ := args.Get(0).(*responses.PrescriptionExport)
	return response, args.Error(1)
}
