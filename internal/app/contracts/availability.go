package contracts

import (
	"context"
	"guidingpath-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	GetDaySlots(ctx context.Context, date string) (*responses.DaySlots, error)
	GetMonthCalendar(ctx context.Context, monthKey string) (*responses.MonthCalendar, error)
}
