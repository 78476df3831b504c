package availability

import (
	"context"
	"errors"
	"guidingpath-service/internal/app/contracts"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/exceptions"
	"guidingpath-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type State int

const (
	NoDateSelected State = iota
	DateSelected
	SlotSelected
)

func (s State) String() string {
	switch s {
	case DateSelected:
		return "date_selected"
	case SlotSelected:
		return "slot_selected"
	default:
		return "no_date_selected"
	}
}

var ErrNoDateSelected = errors.New("no date selected")

// Selection is a snapshot of what the user has picked so far. At is only
// set once a slot is selected.
type Selection struct {
	State State
	Date  time.Time
	Slot  string
	At    time.Time
}

// Calendar holds the scheduling picker state for one booking or reschedule
// flow: the displayed month, the appointments fetched for it and the
// current selection. Each fetch is tagged with a generation so a response
// for a month the user already navigated away from is dropped.
type Calendar struct {
	mu           sync.Mutex
	client       contracts.AppointmentAPIClient
	log          *zap.Logger
	now          func() time.Time
	displayed    time.Time
	generation   uint64
	appointments []models.Appointment
	selection    Selection
}

func NewCalendar(client contracts.AppointmentAPIClient, logger *zap.Logger, now func() time.Time) *Calendar {
	if now == nil {
		now = time.Now
	}
	return &Calendar{
		client:    client,
		log:       logger,
		now:       now,
		displayed: startOfMonth(now().In(time.Local)),
	}
}

func (c *Calendar) DisplayedMonth() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MonthKeyOf(c.displayed)
}

func (c *Calendar) CanNavigatePrevious() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CanNavigatePrevious(c.displayed, c.now())
}

// PreviousMonth moves back one month and refetches. It reports false and
// does nothing when the current month is already displayed.
func (c *Calendar) PreviousMonth(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if !CanNavigatePrevious(c.displayed, c.now()) {
		c.mu.Unlock()
		return false, nil
	}
	c.moveLocked(c.displayed.AddDate(0, -1, 0))
	c.mu.Unlock()
	return true, c.Refresh(ctx)
}

func (c *Calendar) NextMonth(ctx context.Context) error {
	c.mu.Lock()
	c.moveLocked(c.displayed.AddDate(0, 1, 0))
	c.mu.Unlock()
	return c.Refresh(ctx)
}

func (c *Calendar) moveLocked(month time.Time) {
	c.displayed = startOfMonth(month)
	c.appointments = nil
	c.selection = Selection{}
}

// Refresh fetches the appointments of the displayed month. A failed fetch
// is logged and leaves the previous grid in place.
func (c *Calendar) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	monthKey := MonthKeyOf(c.displayed)
	c.mu.Unlock()

	requestID := utils.RequestIDFromContext(ctx)
	appointments, err := c.client.FindAllByMonth(ctx, monthKey)
	if err != nil {
		c.log.Error("Calendar.Refresh error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMonthKey, monthKey),
			zap.Error(err),
		)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		c.log.Info("Calendar.Refresh dropped stale response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMonthKey, monthKey),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return nil
	}
	c.appointments = appointments
	return nil
}

// SelectDate picks a day of the displayed month. Weekends, past days and
// days outside the displayed month are ignored and false is returned.
func (c *Calendar) SelectDate(date time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	date = date.In(c.displayed.Location())
	if MonthKeyOf(date) != MonthKeyOf(c.displayed) || !IsSelectableDate(date, c.now()) {
		return false
	}
	c.selection = Selection{State: DateSelected, Date: startOfDay(date)}
	return true
}

// Slots returns the grid of the selected date, or nil before a date is picked.
func (c *Calendar) Slots() []models.Slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection.State == NoDateSelected {
		return nil
	}
	return ComputeSlots(c.appointments, c.selection.Date)
}

// SelectSlot picks an available label on the selected date and returns the
// timestamp to submit.
func (c *Calendar) SelectSlot(label string) (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selection.State == NoDateSelected {
		return time.Time{}, ErrNoDateSelected
	}
	if !IsWorkingHour(label) {
		return time.Time{}, exceptions.ErrSlotNotOffered(nil, label)
	}
	for _, slot := range ComputeSlots(c.appointments, c.selection.Date) {
		if slot.Time == label && slot.Status == constvars.SlotStatusOccupied {
			return time.Time{}, exceptions.ErrSlotOccupied(nil, label, c.selection.Date.Format(constvars.LayoutDateOnly))
		}
	}

	at, err := SlotTimestamp(c.selection.Date, label)
	if err != nil {
		return time.Time{}, err
	}
	c.selection.State = SlotSelected
	c.selection.Slot = label
	c.selection.At = at
	return at, nil
}

func (c *Calendar) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}
