package appointments

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/backend"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"context"
	"net/url"
)

type appointmentBackendClient struct {
	Client *backend.Client
}

func NewAppointmentBackendClient(client *backend.Client) contracts.AppointmentBackendClient {
	return &appointmentBackendClient{Client: client}
}

func appointmentPath(appointmentID string) string {
	return constvars.BackendPathAppointments + "/" + url.PathEscape(appointmentID)
}

func (c *appointmentBackendClient) ListAppointments(ctx context.Context, token string, query *requests.BackendAppointmentQuery) ([]models.Appointment, error) {
	params := url.Values{}
	if query != nil {
		for key, value := range map[string]string{
			"patient_id": query.PatientID,
			"doctor_id":  query.DoctorID,
			"status":     query.Status,
			"date":       query.Date,
		} {
			if value != "" {
				params.Set(key, value)
			}
		}
	}

	appointments := []models.Appointment{}
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathAppointments,
		Query:    params,
		Token:    token,
		Resource: constvars.ResourceAppointment,
	}, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentBackendClient) FindAppointmentByID(ctx context.Context, token, appointmentID string) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     appointmentPath(appointmentID),
		Token:    token,
		Resource: constvars.ResourceAppointment,
	}, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentBackendClient) CreateAppointment(ctx context.Context, token string, request *requests.BackendCreateAppointment) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathAppointments,
		Token:    token,
		Body:     request,
		Resource: constvars.ResourceAppointment,
	}, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentBackendClient) UpdateAppointmentStatus(ctx context.Context, token, appointmentID string, request *requests.BackendUpdateAppointmentStatus) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodPatch,
		Path:     appointmentPath(appointmentID) + "/status",
		Token:    token,
		Body:     request,
		Resource: constvars.ResourceAppointment,
	}, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}
