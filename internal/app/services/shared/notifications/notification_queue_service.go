package notifications

import (
	"context"

	"legalhub-service/internal/app/contracts"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type notificationQueueService struct {
	channel   *amqp.Channel
	queueName string
	Log       *zap.Logger
}

// NewNotificationQueueService declares the durable notification queue and
// returns a publisher bound to it.
func NewNotificationQueueService(channel *amqp.Channel, queueName string, logger *zap.Logger) (contracts.NotificationPublisher, error) {
	_, err := channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &notificationQueueService{
		channel:   channel,
		queueName: queueName,
		Log:       logger,
	}, nil
}

func (s *notificationQueueService) PublishAppointmentEvent(ctx context.Context, event *contracts.AppointmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.channel.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.Log.Error("notificationQueueService.PublishAppointmentEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.queueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	s.Log.Info("notificationQueueService.PublishAppointmentEvent published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)
	return nil
}
