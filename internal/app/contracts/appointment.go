package contracts

import (
	"context"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/dto/requests"
	"guidingpath-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	BookFromRequest(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.CreateAppointment, error)
	Reschedule(ctx context.Context, request *requests.RescheduleAppointmentRequest) (*responses.RescheduleAppointment, error)
	FindToday(ctx context.Context) (*responses.TodayAppointments, error)
}

type AppointmentAPIClient interface {
	FindAllByMonth(ctx context.Context, monthKey string) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.GuidingPathCreateAppointment) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, request *requests.GuidingPathRescheduleAppointment) (*models.Appointment, error)
}

type RequestAPIClient interface {
	DeleteRequest(ctx context.Context, requestID string) error
}
