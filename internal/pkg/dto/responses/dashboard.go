package responses

import "chamber-portal-service/internal/app/models"

type Dashboard struct {
	Role         models.Role       `json:"role"`
	Stats        models.Statistics `json:"stats"`
	QuickActions []QuickAction     `json:"quick_actions"`
}

type QuickAction struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}
