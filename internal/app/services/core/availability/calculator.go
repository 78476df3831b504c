package availability

import (
	"fmt"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

// workingHours is the slot grid offered on every selectable day, in display
// order. The trailing "08:00 PM" sits outside the daytime shifts and is kept
// as published until product confirms whether it should read "06:00 PM".
var workingHours = [...]string{
	"08:00 AM",
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
	"08:00 PM",
}

// WorkingHours returns a copy of the fixed slot labels.
func WorkingHours() []string {
	labels := make([]string, len(workingHours))
	copy(labels, workingHours[:])
	return labels
}

func IsWorkingHour(label string) bool {
	for _, candidate := range workingHours {
		if candidate == label {
			return true
		}
	}
	return false
}

// MonthKey formats a year and a zero-based month as YYYY-MM, the key the
// upstream appointment listing is queried with.
func MonthKey(year, zeroBasedMonth int) string {
	return fmt.Sprintf("%04d-%02d", year, zeroBasedMonth+1)
}

// MonthKeyOf returns the YYYY-MM key of the month t falls in.
func MonthKeyOf(t time.Time) string {
	return t.Format(constvars.LayoutMonthKey)
}

// ParseMonthKey returns local midnight on the first day of the month named by key.
func ParseMonthKey(key string) (time.Time, error) {
	return time.ParseInLocation(constvars.LayoutMonthKey, key, time.Local)
}

// ParseDate reads a YYYY-MM-DD value as local midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.LayoutDateOnly, value, time.Local)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// SameDate compares calendar dates, reading b in a's location.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// IsSelectableDate reports whether date may be picked on the calendar: a
// weekday that is today or later.
func IsSelectableDate(date, now time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !startOfDay(date).Before(startOfDay(now.In(date.Location())))
}

// CanNavigatePrevious reports whether the month before displayed may be
// shown. Browsing stops at the current month.
func CanNavigatePrevious(displayed, now time.Time) bool {
	now = now.In(displayed.Location())
	if displayed.Year() != now.Year() {
		return displayed.Year() > now.Year()
	}
	return displayed.Month() > now.Month()
}

// MonthDays lists local midnight of every day in the month of t.
func MonthDays(t time.Time) []time.Time {
	first := startOfMonth(t)
	days := make([]time.Time, 0, 31)
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// ComputeSlots returns the working-hours grid for selected. A label is
// occupied only when an appointment on the same calendar date formats to the
// exact same "hh:mm AM/PM" string; 09:15 AM does not occupy 09:00 AM.
// Appointments whose date_time cannot be parsed are ignored.
func ComputeSlots(appointments []models.Appointment, selected time.Time) []models.Slot {
	occupied := make(map[string]struct{}, len(appointments))
	for _, appointment := range appointments {
		at, err := ParseDateTime(appointment.DateTime)
		if err != nil {
			continue
		}
		at = at.In(selected.Location())
		if !SameDate(selected, at) {
			continue
		}
		occupied[FormatSlotLabel(at)] = struct{}{}
	}

	slots := make([]models.Slot, 0, len(workingHours))
	for _, label := range workingHours {
		status := constvars.SlotStatusAvailable
		if _, ok := occupied[label]; ok {
			status = constvars.SlotStatusOccupied
		}
		slots = append(slots, models.Slot{Time: label, Status: status})
	}
	return slots
}

// FormatSlotLabel renders the time of day of t as a zero padded "hh:mm AM/PM" label.
func FormatSlotLabel(t time.Time) string {
	return t.Format(constvars.LayoutSlotLabel)
}

// ParseSlotLabel converts an "hh:mm AM/PM" label into a 24-hour hour and a
// minute. 12 AM is hour 0 and 12 PM is hour 12.
func ParseSlotLabel(label string) (hour, minute int, err error) {
	clock, period, found := strings.Cut(strings.TrimSpace(label), " ")
	if !found {
		return 0, 0, fmt.Errorf("slot label %q: missing AM/PM", label)
	}
	hh, mm, found := strings.Cut(clock, ":")
	if !found {
		return 0, 0, fmt.Errorf("slot label %q: missing minutes", label)
	}

	hour, err = strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("slot label %q: invalid hour", label)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("slot label %q: invalid minute", label)
	}

	switch strings.ToUpper(period) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("slot label %q: invalid period %q", label, period)
	}
	return hour, minute, nil
}

// SlotTimestamp sets the label's hour and minute on the calendar date of
// date, keeping its location. No timezone conversion happens.
func SlotTimestamp(date time.Time, label string) (time.Time, error) {
	hour, minute, err := ParseSlotLabel(label)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, hour, minute, 0, 0, date.Location()), nil
}

var zonelessLayouts = []string{
	constvars.LayoutLocalDateTime,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseDateTime interprets an upstream date_time. Values carrying a zone are
// converted to local time; zone-less values are read as local wall time.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.Local(), nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date_time %q", value)
}
