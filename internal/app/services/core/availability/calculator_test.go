package availability

import (
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func statusByLabel(slots []models.Slot) map[string]string {
	statuses := make(map[string]string, len(slots))
	for _, slot := range slots {
		statuses[slot.Time] = slot.Status
	}
	return statuses
}

func TestWorkingHours(t *testing.T) {
	labels := WorkingHours()
	assert.Len(t, labels, 11)
	assert.Equal(t, "08:00 AM", labels[0])
	assert.Equal(t, "08:00 PM", labels[len(labels)-1])

	labels[0] = "changed"
	assert.Equal(t, "08:00 AM", WorkingHours()[0], "callers must not be able to mutate the grid")
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-06", MonthKey(2024, 5))
	assert.Equal(t, "2024-01", MonthKey(2024, 0))
	assert.Equal(t, "2024-12", MonthKey(2024, 11))
	assert.Equal(t, "2024-06", MonthKeyOf(time.Date(2024, time.June, 30, 23, 0, 0, 0, time.Local)))

	month, err := ParseMonthKey("2024-02")
	assert.NoError(t, err)
	assert.Equal(t, localDate(2024, time.February, 1), month)

	_, err = ParseMonthKey("2024-13")
	assert.Error(t, err)
}

func TestComputeSlots(t *testing.T) {
	selected := localDate(2024, time.June, 10)

	t.Run("No appointments leaves every label available", func(t *testing.T) {
		slots := ComputeSlots(nil, selected)
		assert.Len(t, slots, len(workingHours))
		for i, slot := range slots {
			assert.Equal(t, workingHours[i], slot.Time, "labels keep their order")
			assert.Equal(t, constvars.SlotStatusAvailable, slot.Status)
		}
	})

	t.Run("Exact label match marks only that slot", func(t *testing.T) {
		appointments := []models.Appointment{{ID: "a1", DateTime: "2024-06-10T09:00:00"}}
		statuses := statusByLabel(ComputeSlots(appointments, selected))
		assert.Equal(t, constvars.SlotStatusOccupied, statuses["09:00 AM"])
		for label, status := range statuses {
			if label != "09:00 AM" {
				assert.Equal(t, constvars.SlotStatusAvailable, status, label)
			}
		}
	})

	t.Run("Off-grid minutes do not occupy the hour", func(t *testing.T) {
		appointments := []models.Appointment{{ID: "a1", DateTime: "2024-06-10T09:15:00"}}
		statuses := statusByLabel(ComputeSlots(appointments, selected))
		assert.Equal(t, constvars.SlotStatusAvailable, statuses["09:00 AM"])
	})

	t.Run("Same time on another date does not occupy", func(t *testing.T) {
		appointments := []models.Appointment{
			{ID: "a1", DateTime: "2024-06-11T09:00:00"},
			{ID: "a2", DateTime: "2024-05-10T09:00:00"},
		}
		statuses := statusByLabel(ComputeSlots(appointments, selected))
		assert.Equal(t, constvars.SlotStatusAvailable, statuses["09:00 AM"])
	})

	t.Run("Afternoon appointment from a month listing", func(t *testing.T) {
		appointments := []models.Appointment{{ID: "a1", DateTime: "2024-06-10T13:00:00"}}
		slots := ComputeSlots(appointments, selected)
		assert.Len(t, slots, 11)

		occupied := 0
		for _, slot := range slots {
			if slot.Status == constvars.SlotStatusOccupied {
				occupied++
				assert.Equal(t, "01:00 PM", slot.Time)
			}
		}
		assert.Equal(t, 1, occupied)
	})

	t.Run("Zoned timestamps are compared in local time", func(t *testing.T) {
		at := time.Date(2024, time.June, 10, 14, 0, 0, 0, time.Local)
		appointments := []models.Appointment{{ID: "a1", DateTime: at.UTC().Format(time.RFC3339)}}
		statuses := statusByLabel(ComputeSlots(appointments, selected))
		assert.Equal(t, constvars.SlotStatusOccupied, statuses["02:00 PM"])
	})

	t.Run("Unparseable date_time is ignored", func(t *testing.T) {
		appointments := []models.Appointment{{ID: "a1", DateTime: "tomorrow at nine"}}
		for _, slot := range ComputeSlots(appointments, selected) {
			assert.Equal(t, constvars.SlotStatusAvailable, slot.Status)
		}
	})
}

func TestParseSlotLabel(t *testing.T) {
	tests := []struct {
		label  string
		hour   int
		minute int
	}{
		{"08:00 AM", 8, 0},
		{"11:00 AM", 11, 0},
		{"12:00 AM", 0, 0},
		{"12:30 PM", 12, 30},
		{"01:00 PM", 13, 0},
		{"08:00 PM", 20, 0},
		{"11:59 PM", 23, 59},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			hour, minute, err := ParseSlotLabel(tt.label)
			assert.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}

	for _, invalid := range []string{"", "08:00", "13:00 PM", "00:00 AM", "08:0 AM", "08:60 AM", "08:00 XM", "eight AM"} {
		_, _, err := ParseSlotLabel(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestSlotTimestamp(t *testing.T) {
	date := localDate(2024, time.June, 10)

	at, err := SlotTimestamp(date, "02:00 PM")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 10, 14, 0, 0, 0, time.Local), at)

	at, err = SlotTimestamp(date, "08:00 PM")
	assert.NoError(t, err)
	assert.Equal(t, 20, at.Hour())

	at, err = SlotTimestamp(date, "12:00 AM")
	assert.NoError(t, err)
	assert.Equal(t, 0, at.Hour())
	assert.Equal(t, 10, at.Day())

	at, err = SlotTimestamp(date, "12:00 PM")
	assert.NoError(t, err)
	assert.Equal(t, 12, at.Hour())

	for _, label := range WorkingHours() {
		at, err := SlotTimestamp(date, label)
		assert.NoError(t, err)
		assert.Equal(t, label, FormatSlotLabel(at), "label round-trips")
	}

	_, err = SlotTimestamp(date, "25:00 PM")
	assert.Error(t, err)
}

func TestIsSelectableDate(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 30, 0, 0, time.Local) // Wednesday

	assert.True(t, IsSelectableDate(localDate(2024, time.June, 12), now), "today")
	assert.True(t, IsSelectableDate(localDate(2024, time.June, 13), now), "tomorrow")
	assert.True(t, IsSelectableDate(localDate(2024, time.June, 17), now), "next monday")
	assert.False(t, IsSelectableDate(localDate(2024, time.June, 11), now), "yesterday")
	assert.False(t, IsSelectableDate(localDate(2024, time.June, 15), now), "saturday")
	assert.False(t, IsSelectableDate(localDate(2024, time.June, 16), now), "sunday")
	assert.False(t, IsSelectableDate(localDate(2024, time.May, 29), now), "past month")
}

func TestCanNavigatePrevious(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 30, 0, 0, time.Local)

	assert.False(t, CanNavigatePrevious(localDate(2024, time.June, 1), now))
	assert.False(t, CanNavigatePrevious(localDate(2024, time.May, 1), now))
	assert.True(t, CanNavigatePrevious(localDate(2024, time.July, 1), now))
	assert.True(t, CanNavigatePrevious(localDate(2025, time.January, 1), now))
	assert.False(t, CanNavigatePrevious(localDate(2023, time.December, 1), now))
}

func TestParseDateTime(t *testing.T) {
	local, err := ParseDateTime("2024-06-10T13:00:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 10, 13, 0, 0, 0, time.Local), local)

	zoned, err := ParseDateTime("2024-06-10T13:00:00Z")
	assert.NoError(t, err)
	assert.True(t, zoned.Equal(time.Date(2024, time.June, 10, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Local, zoned.Location())

	fractional, err := ParseDateTime("2024-06-10T13:00:00.000")
	assert.NoError(t, err)
	assert.Equal(t, 13, fractional.Hour())

	_, err = ParseDateTime("10/06/2024")
	assert.Error(t, err)
}

func TestMonthDays(t *testing.T) {
	assert.Len(t, MonthDays(localDate(2024, time.February, 15)), 29)
	assert.Len(t, MonthDays(localDate(2023, time.February, 1)), 28)

	days := MonthDays(localDate(2024, time.June, 20))
	assert.Len(t, days, 30)
	assert.Equal(t, localDate(2024, time.June, 1), days[0])
	assert.Equal(t, localDate(2024, time.June, 30), days[29])
}
