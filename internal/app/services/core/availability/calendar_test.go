package availability

import (
	"context"
	"errors"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func fixedNow() time.Time {
	return time.Date(2024, time.June, 12, 10, 30, 0, 0, time.Local)
}

func TestCalendarSelectionFlow(t *testing.T) {
	ctx := context.Background()
	client := newFakeAppointmentAPIClient()
	client.byMonth["2024-06"] = []models.Appointment{{ID: "a1", DateTime: "2024-06-13T13:00:00"}}

	calendar := NewCalendar(client, zap.NewNop(), fixedNow)
	assert.Equal(t, "2024-06", calendar.DisplayedMonth())
	assert.NoError(t, calendar.Refresh(ctx))

	assert.Equal(t, NoDateSelected, calendar.Selection().State)
	assert.Nil(t, calendar.Slots())

	_, err := calendar.SelectSlot("01:00 PM")
	assert.ErrorIs(t, err, ErrNoDateSelected)

	t.Run("Weekend and past dates are rejected", func(t *testing.T) {
		assert.False(t, calendar.SelectDate(localDate(2024, time.June, 15)))
		assert.False(t, calendar.SelectDate(localDate(2024, time.June, 16)))
		assert.False(t, calendar.SelectDate(localDate(2024, time.June, 11)))
		assert.False(t, calendar.SelectDate(localDate(2024, time.July, 1)), "outside displayed month")
		assert.Equal(t, NoDateSelected, calendar.Selection().State)
	})

	assert.True(t, calendar.SelectDate(time.Date(2024, time.June, 13, 16, 45, 0, 0, time.Local)))
	selection := calendar.Selection()
	assert.Equal(t, DateSelected, selection.State)
	assert.Equal(t, localDate(2024, time.June, 13), selection.Date)

	statuses := statusByLabel(calendar.Slots())
	assert.Equal(t, constvars.SlotStatusOccupied, statuses["01:00 PM"])

	_, err = calendar.SelectSlot("01:00 PM")
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

	_, err = calendar.SelectSlot("07:00 PM")
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, DateSelected, calendar.Selection().State)

	at, err := calendar.SelectSlot("02:00 PM")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 13, 14, 0, 0, 0, time.Local), at)

	selection = calendar.Selection()
	assert.Equal(t, SlotSelected, selection.State)
	assert.Equal(t, "02:00 PM", selection.Slot)
	assert.Equal(t, at, selection.At)

	assert.True(t, calendar.SelectDate(localDate(2024, time.June, 14)))
	selection = calendar.Selection()
	assert.Equal(t, DateSelected, selection.State, "picking another date clears the slot")
	assert.Empty(t, selection.Slot)
}

func TestCalendarNavigation(t *testing.T) {
	ctx := context.Background()
	client := newFakeAppointmentAPIClient()
	calendar := NewCalendar(client, zap.NewNop(), fixedNow)

	assert.False(t, calendar.CanNavigatePrevious())
	moved, err := calendar.PreviousMonth(ctx)
	assert.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, "2024-06", calendar.DisplayedMonth())
	assert.Equal(t, 0, client.callCount(), "blocked navigation does not fetch")

	assert.NoError(t, calendar.NextMonth(ctx))
	assert.Equal(t, "2024-07", calendar.DisplayedMonth())
	assert.Equal(t, "2024-07", <-client.started)
	assert.True(t, calendar.CanNavigatePrevious())

	assert.True(t, calendar.SelectDate(localDate(2024, time.July, 10)))

	moved, err = calendar.PreviousMonth(ctx)
	assert.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "2024-06", calendar.DisplayedMonth())
	assert.Equal(t, "2024-06", <-client.started)
	assert.Equal(t, NoDateSelected, calendar.Selection().State, "month change clears the selection")
}

func TestCalendarDropsStaleResponses(t *testing.T) {
	ctx := context.Background()
	client := newFakeAppointmentAPIClient()
	client.byMonth["2024-06"] = []models.Appointment{{ID: "june", DateTime: "2024-07-10T10:00:00"}}
	client.byMonth["2024-07"] = []models.Appointment{{ID: "july", DateTime: "2024-07-10T09:00:00"}}
	juneGate := make(chan struct{})
	client.gates["2024-06"] = juneGate

	calendar := NewCalendar(client, zap.NewNop(), fixedNow)

	done := make(chan error, 1)
	go func() { done <- calendar.Refresh(ctx) }()
	assert.Equal(t, "2024-06", <-client.started)

	assert.NoError(t, calendar.NextMonth(ctx))
	assert.Equal(t, "2024-07", <-client.started)

	close(juneGate)
	assert.NoError(t, <-done)

	assert.Equal(t, "2024-07", calendar.DisplayedMonth())
	assert.True(t, calendar.SelectDate(localDate(2024, time.July, 10)))
	statuses := statusByLabel(calendar.Slots())
	assert.Equal(t, constvars.SlotStatusOccupied, statuses["09:00 AM"])
	assert.Equal(t, constvars.SlotStatusAvailable, statuses["10:00 AM"], "late june response must not overwrite july")
}

func TestCalendarFailedFetchKeepsGrid(t *testing.T) {
	ctx := context.Background()
	client := newFakeAppointmentAPIClient()
	client.byMonth["2024-06"] = []models.Appointment{{ID: "a1", DateTime: "2024-06-13T08:00:00"}}

	calendar := NewCalendar(client, zap.NewNop(), fixedNow)
	assert.NoError(t, calendar.Refresh(ctx))
	<-client.started

	client.setErr("2024-06", errors.New("upstream down"))
	assert.Error(t, calendar.Refresh(ctx))
	<-client.started

	assert.True(t, calendar.SelectDate(localDate(2024, time.June, 13)))
	statuses := statusByLabel(calendar.Slots())
	assert.Equal(t, constvars.SlotStatusOccupied, statuses["08:00 AM"])
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "no_date_selected", NoDateSelected.String())
	assert.Equal(t, "date_selected", DateSelected.String())
	assert.Equal(t, "slot_selected", SlotSelected.String())
}
