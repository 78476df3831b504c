package appointments

import (
	"context"
	"guidingpath-service/internal/app/config"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/app/services/core/availability"
	"guidingpath-service/internal/app/services/shared/cache"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/dto/requests"
	"guidingpath-service/internal/pkg/dto/responses"
	"guidingpath-service/internal/pkg/exceptions"
	"guidingpath-service/internal/pkg/utils"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentAPIClient contracts.AppointmentAPIClient
	RequestAPIClient     contracts.RequestAPIClient
	Cache                contracts.Cache
	NotificationService  contracts.NotificationService
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentAPIClient contracts.AppointmentAPIClient,
	requestAPIClient contracts.RequestAPIClient,
	appointmentCache contracts.Cache,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentAPIClient: appointmentAPIClient,
			RequestAPIClient:     requestAPIClient,
			Cache:                appointmentCache,
			NotificationService:  notificationService,
			InternalConfig:       internalConfig,
			Log:                  logger,
			now:                  time.Now,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

// BookFromRequest turns a referral/request into an appointment. Once the
// upstream create succeeds, deleting the request, cache invalidation and the
// notification are best effort and only logged on failure.
func (uc *appointmentUsecase) BookFromRequest(ctx context.Context, request *requests.CreateAppointmentRequest) (*responses.CreateAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookFromRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferralRequestIDKey, request.RequestID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingSlotKey, request.Slot),
	)

	scheduledAt, err := uc.resolveFreeSlot(ctx, request.Date, request.Slot, "")
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookFromRequest slot is not bookable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	scheduledDateTime := scheduledAt.Format(time.RFC3339)
	created, err := uc.AppointmentAPIClient.CreateAppointment(ctx, &requests.GuidingPathCreateAppointment{
		Date:        scheduledDateTime,
		ID:          request.RequestID,
		Role:        request.Role,
		Notes:       request.Notes,
		Reason:      request.Reason,
		CounselType: request.CounselType,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookFromRequest error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if created.DateTime == "" {
		created.DateTime = scheduledDateTime
	}
	if created.CounselType == "" {
		created.CounselType = request.CounselType
	}
	location := LocationLabel(created.CounselType)

	// The appointment exists upstream from here on; follow-ups must not be
	// cancelled by the caller going away.
	followUpCtx := utils.DetachedContext(ctx)

	requestDeleted := true
	if err := uc.RequestAPIClient.DeleteRequest(followUpCtx, request.RequestID); err != nil {
		requestDeleted = false
		uc.Log.Warn("appointmentUsecase.BookFromRequest error deleting originating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReferralRequestIDKey, request.RequestID),
			zap.Error(err),
		)
	}

	uc.invalidateCaches(followUpCtx, scheduledAt)
	uc.publish(followUpCtx, &models.AppointmentEvent{
		Type:              constvars.EventAppointmentCreated,
		AppointmentID:     created.ID,
		ReferralRequestID: request.RequestID,
		DateTime:          scheduledDateTime,
		CounselType:       created.CounselType,
		Location:          location,
	})

	uc.Log.Info("appointmentUsecase.BookFromRequest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return &responses.CreateAppointment{
		Appointment:       created.ConvertIntoResponse(location),
		RequestID:         request.RequestID,
		RequestDeleted:    requestDeleted,
		ScheduledDateTime: scheduledDateTime,
	}, nil
}

func (uc *appointmentUsecase) Reschedule(ctx context.Context, request *requests.RescheduleAppointmentRequest) (*responses.RescheduleAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Reschedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingSlotKey, request.Slot),
	)

	scheduledAt, err := uc.resolveFreeSlot(ctx, request.Date, request.Slot, request.AppointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Reschedule slot is not bookable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	scheduledDateTime := scheduledAt.Format(time.RFC3339)
	updated, err := uc.AppointmentAPIClient.RescheduleAppointment(ctx, &requests.GuidingPathRescheduleAppointment{
		Date: scheduledDateTime,
		ID:   request.AppointmentID,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Reschedule error rescheduling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if updated.ID == "" {
		updated.ID = request.AppointmentID
	}
	if updated.DateTime == "" {
		updated.DateTime = scheduledDateTime
	}
	location := LocationLabel(updated.CounselType)

	followUpCtx := utils.DetachedContext(ctx)
	uc.invalidateCaches(followUpCtx, scheduledAt)
	uc.publish(followUpCtx, &models.AppointmentEvent{
		Type:          constvars.EventAppointmentRescheduled,
		AppointmentID: updated.ID,
		DateTime:      scheduledDateTime,
		CounselType:   updated.CounselType,
		Location:      location,
	})

	uc.Log.Info("appointmentUsecase.Reschedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, updated.ID),
	)
	return &responses.RescheduleAppointment{
		Appointment:       updated.ConvertIntoResponse(location),
		ScheduledDateTime: scheduledDateTime,
	}, nil
}

func (uc *appointmentUsecase) FindToday(ctx context.Context) (*responses.TodayAppointments, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindToday called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	today := uc.now()
	key := cache.TodayAppointmentsKey(today)
	ttl := time.Duration(uc.InternalConfig.Cache.TodayAppointmentsTTLInMinutes) * time.Minute

	result, err := cache.ReadThrough(ctx, uc.Cache, uc.Log, key, ttl, func(ctx context.Context) (*responses.TodayAppointments, error) {
		return uc.loadToday(ctx, today)
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindToday error loading appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindToday succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(result.Appointments)),
	)
	return result, nil
}

func (uc *appointmentUsecase) loadToday(ctx context.Context, today time.Time) (*responses.TodayAppointments, error) {
	monthAppointments, err := uc.AppointmentAPIClient.FindAllByMonth(ctx, availability.MonthKeyOf(today))
	if err != nil {
		return nil, err
	}

	type scheduled struct {
		at          time.Time
		appointment models.Appointment
	}
	todays := make([]scheduled, 0, len(monthAppointments))
	for _, appointment := range monthAppointments {
		at, err := availability.ParseDateTime(appointment.DateTime)
		if err != nil {
			uc.Log.Warn("appointmentUsecase.loadToday skipping unparseable date_time",
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.Error(err),
			)
			continue
		}
		if availability.SameDate(today, at) {
			todays = append(todays, scheduled{at: at, appointment: appointment})
		}
	}
	sort.SliceStable(todays, func(i, j int) bool { return todays[i].at.Before(todays[j].at) })

	result := &responses.TodayAppointments{
		Date:         today.Format(constvars.LayoutDateOnly),
		Appointments: make([]responses.Appointment, 0, len(todays)),
	}
	for _, item := range todays {
		result.Appointments = append(result.Appointments, item.appointment.ConvertIntoResponse(LocationLabel(item.appointment.CounselType)))
	}
	return result, nil
}

// resolveFreeSlot checks date and label against a fresh month listing and
// returns the timestamp to submit. excludeID lets a reschedule keep its own
// current slot from counting as taken.
func (uc *appointmentUsecase) resolveFreeSlot(ctx context.Context, date, label, excludeID string) (time.Time, error) {
	selected, err := availability.ParseDate(date)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	if !availability.IsSelectableDate(selected, uc.now()) {
		return time.Time{}, exceptions.ErrDateNotSelectable(nil, date)
	}
	if !availability.IsWorkingHour(label) {
		return time.Time{}, exceptions.ErrSlotNotOffered(nil, label)
	}

	monthAppointments, err := uc.AppointmentAPIClient.FindAllByMonth(ctx, availability.MonthKeyOf(selected))
	if err != nil {
		return time.Time{}, err
	}
	if excludeID != "" {
		kept := monthAppointments[:0:0]
		for _, appointment := range monthAppointments {
			if appointment.ID != excludeID {
				kept = append(kept, appointment)
			}
		}
		monthAppointments = kept
	}

	for _, slot := range availability.ComputeSlots(monthAppointments, selected) {
		if slot.Time == label && slot.Status == constvars.SlotStatusOccupied {
			return time.Time{}, exceptions.ErrSlotOccupied(nil, label, date)
		}
	}
	return availability.SlotTimestamp(selected, label)
}

func (uc *appointmentUsecase) invalidateCaches(ctx context.Context, scheduledAt time.Time) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := uc.now()
	keys := []string{cache.TodayAppointmentsKey(now), cache.DashboardReportKey(now)}
	if !availability.SameDate(now, scheduledAt) {
		keys = append(keys, cache.TodayAppointmentsKey(scheduledAt))
	}
	if availability.MonthKeyOf(now) != availability.MonthKeyOf(scheduledAt) {
		keys = append(keys, cache.DashboardReportKey(scheduledAt))
	}

	for _, key := range keys {
		if err := uc.Cache.Delete(ctx, key); err != nil {
			uc.Log.Warn("appointmentUsecase.invalidateCaches error deleting cache key",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
		}
	}
}

func (uc *appointmentUsecase) publish(ctx context.Context, event *models.AppointmentEvent) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event.OccurredAt = uc.now().Format(time.RFC3339)
	utils.LogBusinessEvent(uc.Log, event.Type, requestID,
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
		zap.String(constvars.LoggingReferralRequestIDKey, event.ReferralRequestID),
	)
	if err := uc.NotificationService.PublishAppointmentEvent(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase.publish error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
	}
}
