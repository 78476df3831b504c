package dashboard

import (
	"context"
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/services/core/availability"
	"guidingpath-service/internal/app/services/shared/cache"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	AppointmentAPIClient contracts.AppointmentAPIClient
	Cache                contracts.Cache
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(
	appointmentAPIClient contracts.AppointmentAPIClient,
	reportCache contracts.Cache,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		instance := &dashboardUsecase{
			AppointmentAPIClient: appointmentAPIClient,
			Cache:                reportCache,
			InternalConfig:       internalConfig,
			Log:                  logger,
			now:                  time.Now,
		}
		dashboardUsecaseInstance = instance
	})
	return dashboardUsecaseInstance
}

// GetReport summarises the appointments of the current month. The report is
// cached per month for the configured TTL.
func (uc *dashboardUsecase) GetReport(ctx context.Context) (*responses.DashboardReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := uc.now()
	ttl := time.Duration(uc.InternalConfig.Cache.DashboardReportTTLInMinutes) * time.Minute
	report, err := cache.ReadThrough(ctx, uc.Cache, uc.Log, cache.DashboardReportKey(now), ttl, func(ctx context.Context) (*responses.DashboardReport, error) {
		return uc.buildReport(ctx, now)
	})
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetReport error building report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("dashboardUsecase.GetReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, report.TotalAppointments),
	)
	return report, nil
}

func (uc *dashboardUsecase) buildReport(ctx context.Context, now time.Time) (*responses.DashboardReport, error) {
	monthKey := availability.MonthKeyOf(now)
	appointments, err := uc.AppointmentAPIClient.FindAllByMonth(ctx, monthKey)
	if err != nil {
		return nil, err
	}

	report := &responses.DashboardReport{
		Month:             monthKey,
		GeneratedAt:       now.Format(time.RFC3339),
		TotalAppointments: len(appointments),
		ByStatus:          map[string]int{},
		ByCounselType:     map[string]int{},
	}
	for _, appointment := range appointments {
		report.ByStatus[valueOrUnknown(appointment.Status)]++
		report.ByCounselType[valueOrUnknown(appointment.CounselType)]++

		at, err := availability.ParseDateTime(appointment.DateTime)
		if err != nil {
			continue
		}
		if availability.SameDate(now, at) {
			report.TodayAppointments++
		}
		if at.After(now) {
			report.UpcomingAppointments++
		}
	}
	return report, nil
}

func valueOrUnknown(value string) string {
	if value == "" {
		return constvars.ResponseUnknown
	}
	return value
}
