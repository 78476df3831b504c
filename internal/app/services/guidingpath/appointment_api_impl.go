package guidingpath

import (
	"context"
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/dto/requests"
	"guidingpath-service/internal/pkg/exceptions"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	appointmentAPIClientInstance contracts.AppointmentAPIClient
	onceAppointmentAPIClient     sync.Once
)

type appointmentAPIClient struct {
	*apiClient
}

func NewAppointmentAPIClient(cfg *config.InternalConfig, logger *zap.Logger) contracts.AppointmentAPIClient {
	onceAppointmentAPIClient.Do(func() {
		client := &appointmentAPIClient{
			apiClient: newAPIClient(
				cfg.GuidingPath.ApiBaseUrl,
				time.Duration(cfg.GuidingPath.ApiTimeoutInSeconds)*time.Second,
				cfg.GuidingPath.ApiRequestsPerSecond,
				cfg.GuidingPath.ApiBurst,
				logger,
			),
		}
		appointmentAPIClientInstance = client
	})
	return appointmentAPIClientInstance
}

type appointmentListBody struct {
	Appointments []models.Appointment `json:"appointments"`
}

func (c *appointmentAPIClient) FindAllByMonth(ctx context.Context, monthKey string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.FindAllByMonth called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMonthKey, monthKey),
	)

	query := url.Values{}
	query.Set(constvars.GuidingPathQueryMonth, monthKey)

	var result appointmentListBody
	err := c.do(ctx, constvars.MethodGet, constvars.GuidingPathPathGetAllAppointments, query, nil, constvars.ResourceAppointment, &result)
	if err != nil {
		c.Log.Error("appointmentAPIClient.FindAllByMonth error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if result.Appointments == nil {
		result.Appointments = []models.Appointment{}
	}

	c.Log.Info("appointmentAPIClient.FindAllByMonth succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(result.Appointments)),
	)
	return result.Appointments, nil
}

func (c *appointmentAPIClient) CreateAppointment(ctx context.Context, request *requests.GuidingPathCreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferralRequestIDKey, request.ID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	appointment, err := c.postAppointment(ctx, constvars.GuidingPathPathCreateAppointment, request)
	if err != nil {
		c.Log.Error("appointmentAPIClient.CreateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentAPIClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (c *appointmentAPIClient) RescheduleAppointment(ctx context.Context, request *requests.GuidingPathRescheduleAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.ID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	appointment, err := c.postAppointment(ctx, constvars.GuidingPathPathRescheduleAppointment, request)
	if err != nil {
		c.Log.Error("appointmentAPIClient.RescheduleAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentAPIClient.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

// postAppointment accepts both a bare appointment record and one wrapped as
// {"appointment": {...}}; the upstream routes are not consistent about it.
func (c *appointmentAPIClient) postAppointment(ctx context.Context, path string, body interface{}) (*models.Appointment, error) {
	var raw json.RawMessage
	err := c.do(ctx, constvars.MethodPost, path, nil, body, constvars.ResourceAppointment, &raw)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{}
	if len(raw) == 0 {
		return appointment, nil
	}

	var wrapped struct {
		Appointment *models.Appointment `json:"appointment"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Appointment != nil {
		return wrapped.Appointment, nil
	}
	if err := json.Unmarshal(raw, appointment); err != nil {
		return nil, exceptions.ErrDecodeUpstreamResponse(err, constvars.ResourceAppointment)
	}
	return appointment, nil
}
