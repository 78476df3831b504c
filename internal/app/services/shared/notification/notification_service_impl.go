package notification

import (
	"context"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher is the part of *amqp.Channel the service needs.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type notificationService struct {
	channel   publisher
	queueName string
	mu        sync.Mutex
	Log       *zap.Logger
}

// NewNotificationService opens a channel on conn and declares the durable
// queue appointment events are published to.
func NewNotificationService(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.NotificationService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queueName)
	}

	return &notificationService{
		channel:   ch,
		queueName: queueName,
		Log:       logger,
	}, nil
}

func (s *notificationService) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("notificationService.PublishAppointmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		Type:          event.Type,
		CorrelationId: requestID,
	}

	// amqp channels are not safe for concurrent publishing
	s.mu.Lock()
	err = s.channel.PublishWithContext(ctx, "", s.queueName, false, false, msg)
	s.mu.Unlock()
	if err != nil {
		err = exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
		s.Log.Error("notificationService.PublishAppointmentEvent error publishing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.queueName),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("notificationService.PublishAppointmentEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)
	return nil
}
