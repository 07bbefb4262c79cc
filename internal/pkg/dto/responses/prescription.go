package responses

import "time"

type PrescriptionExport struct {
	PrescriptionID string    `json:"prescription_id"`
	ObjectName     string    `json:"object_name"`
	URL            string    `json:"url"`
	ExpiresAt      time.Time `json:"expires_at"`
}
