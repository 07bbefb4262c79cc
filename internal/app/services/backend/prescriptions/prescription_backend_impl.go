package prescriptions

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/backend"
	"chamber-portal-service/internal/pkg/constvars"
	"context"
	"net/url"
)

type prescriptionBackendClient struct {
	Client *backend.Client
}

func NewPrescriptionBackendClient(client *backend.Client) contracts.PrescriptionBackendClient {
	return &prescriptionBackendClient{Client: client}
}

func (c *prescriptionBackendClient) ListPrescriptions(ctx context.Context, token, patientID, doctorID string) ([]models.Prescription, error) {
	params := url.Values{}
	if patientID != "" {
		params.Set("patient_id", patientID)
	}
	if doctorID != "" {
		params.Set("doctor_id", doctorID)
	}

	prescriptions := []models.Prescription{}
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathPrescriptions,
		Query:    params,
		Token:    token,
		Resource: constvars.ResourcePrescription,
	}, &prescriptions)
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (c *prescriptionBackendClient) FindPrescriptionByID(ctx context.Context, token, prescriptionID string) (*models.Prescription, error) {
	prescription := new(models.Prescription)
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathPrescriptions + "/" + url.PathEscape(prescriptionID),
		Token:    token,
		Resource: constvars.ResourcePrescription,
	}, prescription)
	if err != nil {
		return nil, err
	}
	return prescription, nil
}
