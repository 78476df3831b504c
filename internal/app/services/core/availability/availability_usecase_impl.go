package availability

import (
	"context"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/dto/responses"
	"guidingpath-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	AppointmentAPIClient contracts.AppointmentAPIClient
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	appointmentAPIClient contracts.AppointmentAPIClient,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		instance := &availabilityUsecase{
			AppointmentAPIClient: appointmentAPIClient,
			Log:                  logger,
			now:                  time.Now,
		}
		availabilityUsecaseInstance = instance
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) GetDaySlots(ctx context.Context, date string) (*responses.DaySlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetDaySlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	selected, err := ParseDate(date)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetDaySlots error parsing date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseTime(err)
	}

	if !IsSelectableDate(selected, uc.now()) {
		err := exceptions.ErrDateNotSelectable(nil, date)
		uc.Log.Error("availabilityUsecase.GetDaySlots date is not selectable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	monthKey := MonthKeyOf(selected)
	appointments, err := uc.AppointmentAPIClient.FindAllByMonth(ctx, monthKey)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetDaySlots error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMonthKey, monthKey),
			zap.Error(err),
		)
		return nil, err
	}

	slots := ComputeSlots(appointments, selected)
	response := &responses.DaySlots{
		Date:  date,
		Month: monthKey,
		Slots: make([]responses.Slot, 0, len(slots)),
	}
	for _, slot := range slots {
		if slot.Status == constvars.SlotStatusAvailable {
			response.AvailableCount++
		}
		response.Slots = append(response.Slots, slot.ConvertIntoResponse())
	}

	uc.Log.Info("availabilityUsecase.GetDaySlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return response, nil
}

func (uc *availabilityUsecase) GetMonthCalendar(ctx context.Context, monthKey string) (*responses.MonthCalendar, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetMonthCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMonthKey, monthKey),
	)

	month, err := ParseMonthKey(monthKey)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetMonthCalendar error parsing month",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseTime(err)
	}

	appointments, err := uc.AppointmentAPIClient.FindAllByMonth(ctx, monthKey)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetMonthCalendar error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	response := &responses.MonthCalendar{
		Month:               monthKey,
		PreviousMonth:       MonthKeyOf(month.AddDate(0, -1, 0)),
		NextMonth:           MonthKeyOf(month.AddDate(0, 1, 0)),
		CanNavigatePrevious: CanNavigatePrevious(month, now),
	}
	for _, day := range MonthDays(month) {
		response.Days = append(response.Days, responses.CalendarDay{
			Date:          day.Format(constvars.LayoutDateOnly),
			Weekday:       day.Weekday().String(),
			Selectable:    IsSelectableDate(day, now),
			OccupiedCount: countOccupied(ComputeSlots(appointments, day)),
		})
	}

	uc.Log.Info("availabilityUsecase.GetMonthCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return response, nil
}

func countOccupied(slots []models.Slot) int {
	count := 0
	for _, slot := range slots {
		if slot.Status == constvars.SlotStatusOccupied {
			count++
		}
	}
	return count
}
