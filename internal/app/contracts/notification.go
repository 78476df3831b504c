package contracts

import (
	"context"
	"guidingpath-service/internal/app/models"
)

type NotificationService interface {
	PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error
}
