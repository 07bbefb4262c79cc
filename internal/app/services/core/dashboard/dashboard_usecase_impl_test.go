package dashboard

import (
	"chamber-portal-service/internal/app/contracts/mocks"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/core/session"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(statsClient *mocks.MockStatisticsBackendClient) *dashboardUsecase {
	return &dashboardUsecase{
		StatisticsBackendClient: statsClient,
		SessionService:          session.NewSessionService(nil),
		Log:                     zap.NewNop(),
	}
}

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name        string
		sessionData string
		setup       func(m *mocks.MockStatisticsBackendClient)
		role        models.Role
		firstAction string
	}{
		{
			name:        "Admin",
			sessionData: `{"role":"admin","backend_token":"tkn"}`,
			setup: func(m *mocks.MockStatisticsBackendClient) {
				m.On("GetAdminStatistics", mock.Anything, "tkn").Return(models.Statistics{"total_doctors": float64(12)}, nil)
			},
			role:        models.RoleAdmin,
			firstAction: "doctors",
		},
		{
			name:        "Doctor",
			sessionData: `{"role":"doctor","backend_token":"tkn","doctor_id":"doc-1"}`,
			setup: func(m *mocks.MockStatisticsBackendClient) {
				m.On("GetDoctorStatistics", mock.Anything, "tkn", "doc-1").Return(models.Statistics{"today_appointments": float64(4)}, nil)
			},
			role:        models.RoleDoctor,
			firstAction: "appointments",
		},
		{
			name:        "Patient",
			sessionData: `{"role":"patient","backend_token":"tkn","patient_id":"pat-1"}`,
			setup: func(m *mocks.MockStatisticsBackendClient) {
				m.On("GetPatientStatistics", mock.Anything, "tkn", "pat-1").Return(models.Statistics{"upcoming": float64(1)}, nil)
			},
			role:        models.RolePatient,
			firstAction: "book_appointment",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			statsClient := new(mocks.MockStatisticsBackendClient)
			tc.setup(statsClient)

			dashboard, err := newTestUsecase(statsClient).GetDashboard(context.Background(), tc.sessionData)
			require.NoError(t, err)
			assert.Equal(t, tc.role, dashboard.Role)
			assert.NotEmpty(t, dashboard.Stats)
			require.NotEmpty(t, dashboard.QuickActions)
			assert.Equal(t, tc.firstAction, dashboard.QuickActions[0].Key)
			statsClient.AssertExpectations(t)
		})
	}
}

func TestGetDashboardNilStatistics(t *testing.T) {
	statsClient := new(mocks.MockStatisticsBackendClient)
	statsClient.On("GetAdminStatistics", mock.Anything, "").Return(nil, nil)

	dashboard, err := newTestUsecase(statsClient).GetDashboard(context.Background(), `{"role":"admin"}`)
	require.NoError(t, err)
	assert.NotNil(t, dashboard.Stats)
}

func TestQuickActionsAreCopied(t *testing.T) {
	actions := quickActions(models.RolePatient)
	actions[0].Key = "changed"
	assert.Equal(t, "book_appointment", quickActions(models.RolePatient)[0].Key)
}
