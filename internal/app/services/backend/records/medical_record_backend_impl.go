package records

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/backend"
	"chamber-portal-service/internal/pkg/constvars"
	"context"
	"net/url"
)

type medicalRecordBackendClient struct {
	Client *backend.Client
}

func NewMedicalRecordBackendClient(client *backend.Client) contracts.MedicalRecordBackendClient {
	return &medicalRecordBackendClient{Client: client}
}

func (c *medicalRecordBackendClient) ListMedicalRecords(ctx context.Context, token, patientID string) ([]models.MedicalRecord, error) {
	params := url.Values{}
	if patientID != "" {
		params.Set("patient_id", patientID)
	}

	records := []models.MedicalRecord{}
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathMedicalRecords,
		Query:    params,
		Token:    token,
		Resource: constvars.ResourceMedicalRecord,
	}, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *medicalRecordBackendClient) FindMedicalRecordByID(ctx context.Context, token, recordID string) (*models.MedicalRecord, error) {
	record := new(models.MedicalRecord)
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.BackendPathMedicalRecords + "/" + url.PathEscape(recordID),
		Token:    token,
		Resource: constvars.ResourceMedicalRecord,
	}, record)
	if err != nil {
		return nil, err
	}
	return record, nil
}
