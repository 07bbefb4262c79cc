package doctors

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/backend"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"context"
	"net/url"
)

type doctorBackendClient struct {
	Client *backend.Client
}

func NewDoctorBackendClient(client *backend.Client) contracts.DoctorBackendClient {
	return &doctorBackendClient{Client: client}
}

func (c *doctorBackendClient) ListDoctors(ctx context.Context, token string, query *requests.BackendDoctorQuery) ([]models.Doctor, error) {
	params := url.Values{}
	if query != nil {
		if query.Search != "" {
			params.Set("search", query.Search)
		}
		if query.Specialization != "" {
			params.Set("specialization", query.Specialization)
		}
	}

	doctors := []models.Doctor{}
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathDoctors,
		Query:    params,
		Token:    token,
		Resource: constvars.ResourceDoctor,
	}, &doctors)
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *doctorBackendClient) FindDoctorByID(ctx context.Context, token, doctorID string) (*models.Doctor, error) {
	doctor := new(models.Doctor)
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathDoctors + "/" + url.PathEscape(doctorID),
		Token:    token,
		Resource: constvars.ResourceDoctor,
	}, doctor)
	if err != nil {
		return nil, err
	}
	return doctor, nil
}
