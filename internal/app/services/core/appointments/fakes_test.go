package appointments

import (
	"context"
	"errors"
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/app/services/shared/cache"
	"guidingpath-service/internal/pkg/dto/requests"
	"time"

	"go.uber.org/zap"
)

type fakeAppointmentAPIClient struct {
	byMonth      map[string][]models.Appointment
	findErr      error
	findCalls    int
	created      *requests.GuidingPathCreateAppointment
	createResult *models.Appointment
	createErr    error
	rescheduled  *requests.GuidingPathRescheduleAppointment
	rescheduleOK *models.Appointment
}

func (f *fakeAppointmentAPIClient) FindAllByMonth(ctx context.Context, monthKey string) ([]models.Appointment, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byMonth[monthKey], nil
}

func (f *fakeAppointmentAPIClient) CreateAppointment(ctx context.Context, request *requests.GuidingPathCreateAppointment) (*models.Appointment, error) {
	f.created = request
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	return &models.Appointment{ID: "apt-new"}, nil
}

func (f *fakeAppointmentAPIClient) RescheduleAppointment(ctx context.Context, request *requests.GuidingPathRescheduleAppointment) (*models.Appointment, error) {
	f.rescheduled = request
	if f.rescheduleOK != nil {
		return f.rescheduleOK, nil
	}
	return &models.Appointment{}, nil
}

type fakeRequestAPIClient struct {
	deleted []string
	err     error
}

func (f *fakeRequestAPIClient) DeleteRequest(ctx context.Context, requestID string) error {
	f.deleted = append(f.deleted, requestID)
	return f.err
}

type fakeNotificationService struct {
	events []*models.AppointmentEvent
	err    error
}

func (f *fakeNotificationService) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	f.events = append(f.events, event)
	return f.err
}

var errFake = errors.New("fake failure")

func fixedNow() time.Time {
	return time.Date(2024, time.June, 12, 10, 30, 0, 0, time.Local)
}

type testDeps struct {
	appointments  *fakeAppointmentAPIClient
	requests      *fakeRequestAPIClient
	notifications *fakeNotificationService
	usecase       *appointmentUsecase
}

func newTestDeps() *testDeps {
	deps := &testDeps{
		appointments:  &fakeAppointmentAPIClient{byMonth: map[string][]models.Appointment{}},
		requests:      &fakeRequestAPIClient{},
		notifications: &fakeNotificationService{},
	}
	internalConfig := &config.InternalConfig{}
	internalConfig.Cache.TodayAppointmentsTTLInMinutes = 10

	deps.usecase = &appointmentUsecase{
		AppointmentAPIClient: deps.appointments,
		RequestAPIClient:     deps.requests,
		Cache:                cache.NewMemoryCache(fixedNow),
		NotificationService:  deps.notifications,
		InternalConfig:       internalConfig,
		Log:                  zap.NewNop(),
		now:                  fixedNow,
	}
	return deps
}
