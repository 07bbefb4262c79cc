package statistics

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/backend"
	"chamber-portal-service/internal/pkg/constvars"
	"context"
	"fmt"
	"net/url"
)

type statisticsBackendClient struct {
	Client *backend.Client
}

func NewStatisticsBackendClient(client *backend.Client) contracts.StatisticsBackendClient {
	return &statisticsBackendClient{Client: client}
}

func (c *statisticsBackendClient) GetAdminStatistics(ctx context.Context, token string) (models.Statistics, error) {
	return c.get(ctx, token, constvars.BackendPathStatsAdmin)
}

func (c *statisticsBackendClient) GetDoctorStatistics(ctx context.Context, token, doctorID string) (models.Statistics, error) {
	return c.get(ctx, token, fmt.Sprintf(constvars.BackendPathStatsDoctor, url.PathEscape(doctorID)))
}

func (c *statisticsBackendClient) GetPatientStatistics(ctx context.Context, token, patientID string) (models.Statistics, error) {
	return c.get(ctx, token, fmt.Sprintf(constvars.BackendPathStatsPatient, url.PathEscape(patientID)))
}

func (c *statisticsBackendClient) get(ctx context.Context, token, path string) (models.Statistics, error) {
	stats := models.Statistics{}
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     path,
		Token:    token,
		Resource: constvars.ResourceStatistics,
	}, &stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
