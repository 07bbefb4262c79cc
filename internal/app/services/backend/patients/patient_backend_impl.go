package patients

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/backend"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"context"
	"net/url"
)

type patientBackendClient struct {
	Client *backend.Client
}

func NewPatientBackendClient(client *backend.Client) contracts.PatientBackendClient {
	return &patientBackendClient{Client: client}
}

func patientPath(patientID string) string {
	return constvars.BackendPathPatients + "/" + url.PathEscape(patientID)
}

// ListPatients lists every patient, or only the patients of doctorID when set.
func (c *patientBackendClient) ListPatients(ctx context.Context, token, doctorID string) ([]models.Patient, error) {
	params := url.Values{}
	if doctorID != "" {
		params.Set("doctor_id", doctorID)
	}

	patients := []models.Patient{}
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathPatients,
		Query:    params,
		Token:    token,
		Resource: constvars.ResourcePatient,
	}, &patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *patientBackendClient) FindPatientByID(ctx context.Context, token, patientID string) (*models.Patient, error) {
	return c.sendForPatient(ctx, constvars.MethodGet, patientPath(patientID), token, nil)
}

func (c *patientBackendClient) VerifyPatient(ctx context.Context, token, patientID string) (*models.Patient, error) {
	return c.sendForPatient(ctx, constvars.MethodPatch, patientPath(patientID)+"/verify", token, nil)
}

func (c *patientBackendClient) UpdatePatientStatus(ctx context.Context, token, patientID string, request *requests.BackendPatientStatus) (*models.Patient, error) {
	return c.sendForPatient(ctx, constvars.MethodPatch, patientPath(patientID)+"/status", token, request)
}

func (c *patientBackendClient) sendForPatient(ctx context.Context, method, path, token string, body interface{}) (*models.Patient, error) {
	patient := new(models.Patient)
	err := c.Client.Do(ctx, &backend.Request{
		Method:   method,
		Path:     path,
		Token:    token,
		Body:     body,
		Resource: constvars.ResourcePatient,
	}, patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}
