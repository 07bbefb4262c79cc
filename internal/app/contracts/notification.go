package contracts

import (
	"chamber-portal-service/internal/pkg/dto/requests"
	"context"
)

type NotificationPublisher interface {
	PublishAppointmentEvent(ctx context.Context, message *requests.AppointmentNotification) error
}
