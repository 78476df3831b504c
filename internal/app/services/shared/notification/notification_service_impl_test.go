package notification

import (
	"context"
	"errors"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePublisher struct {
	queue string
	msg   amqp.Publishing
	err   error
}

func (f *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.queue = key
	f.msg = msg
	return f.err
}

func TestPublishAppointmentEvent(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	event := &models.AppointmentEvent{
		Type:          constvars.EventAppointmentCreated,
		AppointmentID: "apt-1",
		DateTime:      "2024-06-10T14:00:00+07:00",
	}

	t.Run("Publishes persistent JSON", func(t *testing.T) {
		pub := &fakePublisher{}
		svc := &notificationService{channel: pub, queueName: "events", Log: zap.NewNop()}

		assert.NoError(t, svc.PublishAppointmentEvent(ctx, event))
		assert.Equal(t, "events", pub.queue)
		assert.Equal(t, amqp.Persistent, pub.msg.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, pub.msg.ContentType)
		assert.Equal(t, "req-1", pub.msg.CorrelationId)

		var decoded models.AppointmentEvent
		assert.NoError(t, json.Unmarshal(pub.msg.Body, &decoded))
		assert.Equal(t, *event, decoded)
	})

	t.Run("Wraps publish failures", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("channel closed")}
		svc := &notificationService{channel: pub, queueName: "events", Log: zap.NewNop()}

		assert.Error(t, svc.PublishAppointmentEvent(ctx, event))
	})
}
