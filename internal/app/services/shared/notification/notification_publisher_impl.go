package notification

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channelPublisher is the part of *amqp091.Channel the publisher needs.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type notificationPublisher struct {
	mu      sync.Mutex
	channel channelPublisher
	queue   string
	Log     *zap.Logger
}

// NewNotificationPublisher opens a channel on conn and declares queue as durable.
func NewNotificationPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.NotificationPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		return nil, err
	}

	return newNotificationPublisher(channel, queue, logger), nil
}

func newNotificationPublisher(channel channelPublisher, queue string, logger *zap.Logger) *notificationPublisher {
	return &notificationPublisher{
		channel: channel,
		queue:   queue,
		Log:     logger,
	}
}

func (p *notificationPublisher) PublishAppointmentEvent(ctx context.Context, message *requests.AppointmentNotification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         message.Event,
		MessageId:    requestID,
		Timestamp:    message.OccurredAt,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, publishing)
	p.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}

	p.Log.Info("notificationPublisher.PublishAppointmentEvent published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, message.Event),
		zap.String(constvars.LoggingQueueKey, p.queue),
		zap.String(constvars.LoggingAppointmentIDKey, message.AppointmentID),
	)
	return nil
}
