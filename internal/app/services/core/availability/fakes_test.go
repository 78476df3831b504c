package availability

import (
	"context"
	"errors"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/dto/requests"
	"sync"
)

type fakeAppointmentAPIClient struct {
	mu      sync.Mutex
	byMonth map[string][]models.Appointment
	errs    map[string]error
	gates   map[string]chan struct{}
	started chan string
	calls   []string
}

func newFakeAppointmentAPIClient() *fakeAppointmentAPIClient {
	return &fakeAppointmentAPIClient{
		byMonth: map[string][]models.Appointment{},
		errs:    map[string]error{},
		gates:   map[string]chan struct{}{},
		started: make(chan string, 16),
	}
}

func (f *fakeAppointmentAPIClient) FindAllByMonth(ctx context.Context, monthKey string) ([]models.Appointment, error) {
	f.mu.Lock()
	f.calls = append(f.calls, monthKey)
	gate := f.gates[monthKey]
	f.mu.Unlock()

	f.started <- monthKey
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[monthKey]; err != nil {
		return nil, err
	}
	return f.byMonth[monthKey], nil
}

func (f *fakeAppointmentAPIClient) CreateAppointment(ctx context.Context, request *requests.GuidingPathCreateAppointment) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAppointmentAPIClient) RescheduleAppointment(ctx context.Context, request *requests.GuidingPathRescheduleAppointment) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAppointmentAPIClient) setErr(monthKey string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[monthKey] = err
}

func (f *fakeAppointmentAPIClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
