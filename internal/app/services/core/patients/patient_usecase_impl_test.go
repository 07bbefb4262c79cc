package patients

import (
	"chamber-portal-service/internal/app/contracts/mocks"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/core/session"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	patientSession = `{"role":"patient","patient_id":"pat-1","backend_token":"tkn"}`
	doctorSession  = `{"role":"doctor","doctor_id":"doc-1","backend_token":"tkn"}`
	adminSession   = `{"role":"admin","backend_token":"tkn"}`
)

func newTestUsecase(backendClient *mocks.MockPatientBackendClient) *patientUsecase {
	return &patientUsecase{
		PatientBackendClient: backendClient,
		SessionService:       session.NewSessionService(nil),
		Log:                  zap.NewNop(),
	}
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, status, customErr.StatusCode)
}

func roster() []models.Patient {
	return []models.Patient{
		{ID: "pat-1", Name: "Karim Uddin", Email: "karim@example.com", Phone: "01711000000", IsVerified: true, Status: "active"},
		{ID: "pat-2", Name: "Rahima Begum", Email: "rahima@example.com", Phone: "01811000000", IsVerified: false, Status: "active"},
		{ID: "pat-3", Name: "Sohel Rana", Email: "sohel@example.com", Phone: "01911000000", IsVerified: true, Status: "inactive"},
	}
}

func TestListPatients(t *testing.T) {
	verified := true

	tests := []struct {
		name        string
		sessionData string
		doctorID    string
		query       *requests.PatientQuery
		wantIDs     []string
	}{
		{
			name:        "Doctor Sees Own Patients",
			sessionData: doctorSession,
			doctorID:    "doc-1",
			query:       &requests.PatientQuery{Pagination: requests.Pagination{Page: 1, PageSize: 10}},
			wantIDs:     []string{"pat-1", "pat-2", "pat-3"},
		},
		{
			name:        "Admin Filters Verified",
			sessionData: adminSession,
			query:       &requests.PatientQuery{Verified: &verified, Pagination: requests.Pagination{Page: 1, PageSize: 10}},
			wantIDs:     []string{"pat-1", "pat-3"},
		},
		{
			name:        "Search By Phone",
			sessionData: adminSession,
			query:       &requests.PatientQuery{Search: "0181", Pagination: requests.Pagination{Page: 1, PageSize: 10}},
			wantIDs:     []string{"pat-2"},
		},
		{
			name:        "Status Filter",
			sessionData: adminSession,
			query:       &requests.PatientQuery{Status: "Inactive", Pagination: requests.Pagination{Page: 1, PageSize: 10}},
			wantIDs:     []string{"pat-3"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			backendClient := new(mocks.MockPatientBackendClient)
			backendClient.On("ListPatients", mock.Anything, "tkn", tc.doctorID).Return(roster(), nil)

			patients, total, err := newTestUsecase(backendClient).ListPatients(context.Background(), tc.sessionData, tc.query)
			require.NoError(t, err)
			assert.Equal(t, len(tc.wantIDs), total)

			ids := make([]string, 0, len(patients))
			for _, patient := range patients {
				ids = append(ids, patient.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}

	t.Run("Patient Rejected", func(t *testing.T) {
		_, _, err := newTestUsecase(new(mocks.MockPatientBackendClient)).ListPatients(context.Background(), patientSession, nil)
		assertStatus(t, err, constvars.StatusForbidden)
	})
}

func TestGetPatient(t *testing.T) {
	t.Run("Patient Reads Self", func(t *testing.T) {
		backendClient := new(mocks.MockPatientBackendClient)
		backendClient.On("FindPatientByID", mock.Anything, "tkn", "pat-1").Return(&roster()[0], nil)

		patient, err := newTestUsecase(backendClient).GetPatient(context.Background(), patientSession, "pat-1")
		require.NoError(t, err)
		assert.Equal(t, "Karim Uddin", patient.Name)
	})

	t.Run("Patient Cannot Read Others", func(t *testing.T) {
		backendClient := new(mocks.MockPatientBackendClient)
		_, err := newTestUsecase(backendClient).GetPatient(context.Background(), patientSession, "pat-2")
		assertStatus(t, err, constvars.StatusForbidden)
		backendClient.AssertNotCalled(t, "FindPatientByID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVerifyAndStatus(t *testing.T) {
	t.Run("Doctor Verifies", func(t *testing.T) {
		backendClient := new(mocks.MockPatientBackendClient)
		backendClient.On("VerifyPatient", mock.Anything, "tkn", "pat-2").Return(&models.Patient{ID: "pat-2", IsVerified: true}, nil)

		patient, err := newTestUsecase(backendClient).VerifyPatient(context.Background(), doctorSession, "pat-2")
		require.NoError(t, err)
		assert.True(t, patient.IsVerified)
	})

	t.Run("Patient Cannot Verify", func(t *testing.T) {
		_, err := newTestUsecase(new(mocks.MockPatientBackendClient)).VerifyPatient(context.Background(), patientSession, "pat-1")
		assertStatus(t, err, constvars.StatusForbidden)
	})

	t.Run("Admin Deactivates", func(t *testing.T) {
		backendClient := new(mocks.MockPatientBackendClient)
		backendClient.On("UpdatePatientStatus", mock.Anything, "tkn", "pat-1", &requests.BackendPatientStatus{IsActive: false}).
			Return(&models.Patient{ID: "pat-1", Status: constvars.PatientStatusInactive}, nil)

		active := false
		patient, err := newTestUsecase(backendClient).UpdatePatientStatus(context.Background(), adminSession, "pat-1", &requests.UpdatePatientStatus{Active: &active})
		require.NoError(t, err)
		assert.Equal(t, constvars.PatientStatusInactive, patient.Status)
	})

	t.Run("Missing Active Flag", func(t *testing.T) {
		_, err := newTestUsecase(new(mocks.MockPatientBackendClient)).UpdatePatientStatus(context.Background(), adminSession, "pat-1", &requests.UpdatePatientStatus{})
		assertStatus(t, err, constvars.StatusBadRequest)
	})
}
