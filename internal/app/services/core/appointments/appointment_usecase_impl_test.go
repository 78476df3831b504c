package appointments

import (
	"context"
	"errors"
	"guidingpath-service/internal/app/models"
	"guidingpath-service/internal/app/services/shared/cache"
	"guidingpath-service/internal/pkg/constvars"
	"guidingpath-service/internal/pkg/dto/requests"
	"guidingpath-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func bookingRequest() *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		RequestID:   "req-1",
		Role:        constvars.GuidingPathRoleCounselor,
		Date:        "2024-06-13",
		Slot:        "02:00 PM",
		CounselType: constvars.CounselTypeVirtual,
		Reason:      "Course selection",
		Notes:       "Bring transcript",
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	if !assert.True(t, errors.As(err, &customErr)) {
		return 0
	}
	return customErr.StatusCode
}

func TestLocationLabel(t *testing.T) {
	assert.Equal(t, "Virtual (Online Meeting)", LocationLabel(constvars.CounselTypeVirtual))
	assert.Equal(t, "Guidance Office", LocationLabel(constvars.CounselTypeInPerson))
	assert.Equal(t, LocationToBeAnnounced, LocationLabel("phone"))
	assert.Equal(t, LocationToBeAnnounced, LocationLabel(""))
}

func TestBookFromRequest(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request")

	t.Run("Creates, deletes the request and notifies", func(t *testing.T) {
		deps := newTestDeps()
		deps.appointments.byMonth["2024-06"] = []models.Appointment{{ID: "other", DateTime: "2024-06-13T13:00:00"}}
		assert.NoError(t, deps.usecase.Cache.Set(ctx, cache.TodayAppointmentsKey(fixedNow()), "stale", time.Hour))

		result, err := deps.usecase.BookFromRequest(ctx, bookingRequest())
		assert.NoError(t, err)

		expectedAt := time.Date(2024, time.June, 13, 14, 0, 0, 0, time.Local).Format(time.RFC3339)
		assert.Equal(t, expectedAt, deps.appointments.created.Date)
		assert.Equal(t, "req-1", deps.appointments.created.ID)
		assert.Equal(t, "counselor", deps.appointments.created.Role)
		assert.Equal(t, "virtual", deps.appointments.created.CounselType)

		assert.Equal(t, []string{"req-1"}, deps.requests.deleted)
		assert.True(t, result.RequestDeleted)
		assert.Equal(t, expectedAt, result.ScheduledDateTime)
		assert.Equal(t, "apt-new", result.Appointment.ID)
		assert.Equal(t, "Virtual (Online Meeting)", result.Appointment.Location)
		assert.Equal(t, expectedAt, result.Appointment.DateTime)

		assert.Len(t, deps.notifications.events, 1)
		assert.Equal(t, constvars.EventAppointmentCreated, deps.notifications.events[0].Type)
		assert.Equal(t, "req-1", deps.notifications.events[0].ReferralRequestID)

		cached, _ := deps.usecase.Cache.Get(ctx, cache.TodayAppointmentsKey(fixedNow()))
		assert.Empty(t, cached, "today cache is invalidated")
	})

	t.Run("Follow-up failures do not fail the booking", func(t *testing.T) {
		deps := newTestDeps()
		deps.requests.err = errFake
		deps.notifications.err = errFake

		result, err := deps.usecase.BookFromRequest(ctx, bookingRequest())
		assert.NoError(t, err)
		assert.False(t, result.RequestDeleted)
		assert.Len(t, deps.notifications.events, 1)
	})

	t.Run("Occupied slot is rejected before creating", func(t *testing.T) {
		deps := newTestDeps()
		deps.appointments.byMonth["2024-06"] = []models.Appointment{{ID: "taken", DateTime: "2024-06-13T14:00:00"}}

		_, err := deps.usecase.BookFromRequest(ctx, bookingRequest())
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		assert.Nil(t, deps.appointments.created)
		assert.Empty(t, deps.requests.deleted)
	})

	t.Run("Weekend date is rejected without fetching", func(t *testing.T) {
		deps := newTestDeps()
		request := bookingRequest()
		request.Date = "2024-06-15"

		_, err := deps.usecase.BookFromRequest(ctx, request)
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		assert.Equal(t, 0, deps.appointments.findCalls)
	})

	t.Run("Label outside the working hours is rejected", func(t *testing.T) {
		deps := newTestDeps()
		request := bookingRequest()
		request.Slot = "07:00 PM"

		_, err := deps.usecase.BookFromRequest(ctx, request)
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Upstream create error is surfaced and nothing else happens", func(t *testing.T) {
		deps := newTestDeps()
		deps.appointments.createErr = exceptions.ErrUpstreamResponse(errFake, constvars.ResourceAppointment, constvars.StatusConflict, "Slot already taken")

		_, err := deps.usecase.BookFromRequest(ctx, bookingRequest())
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		assert.Empty(t, deps.requests.deleted)
		assert.Empty(t, deps.notifications.events)
	})

	t.Run("Availability fetch error aborts", func(t *testing.T) {
		deps := newTestDeps()
		deps.appointments.findErr = errFake

		_, err := deps.usecase.BookFromRequest(ctx, bookingRequest())
		assert.ErrorIs(t, err, errFake)
		assert.Nil(t, deps.appointments.created)
	})
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Own current slot does not block", func(t *testing.T) {
		deps := newTestDeps()
		deps.appointments.byMonth["2024-06"] = []models.Appointment{{ID: "apt-1", DateTime: "2024-06-13T09:00:00", CounselType: constvars.CounselTypeInPerson}}
		deps.appointments.rescheduleOK = &models.Appointment{ID: "apt-1", CounselType: constvars.CounselTypeInPerson}

		result, err := deps.usecase.Reschedule(ctx, &requests.RescheduleAppointmentRequest{
			AppointmentID: "apt-1",
			Date:          "2024-06-13",
			Slot:          "09:00 AM",
		})
		assert.NoError(t, err)
		assert.Equal(t, "apt-1", deps.appointments.rescheduled.ID)
		assert.Equal(t, "Guidance Office", result.Appointment.Location)
		assert.Equal(t, 9, mustParse(t, result.ScheduledDateTime).Hour())

		assert.Len(t, deps.notifications.events, 1)
		assert.Equal(t, constvars.EventAppointmentRescheduled, deps.notifications.events[0].Type)
	})

	t.Run("Another appointment in the slot blocks", func(t *testing.T) {
		deps := newTestDeps()
		deps.appointments.byMonth["2024-06"] = []models.Appointment{{ID: "apt-2", DateTime: "2024-06-13T09:00:00"}}

		_, err := deps.usecase.Reschedule(ctx, &requests.RescheduleAppointmentRequest{
			AppointmentID: "apt-1",
			Date:          "2024-06-13",
			Slot:          "09:00 AM",
		})
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		assert.Nil(t, deps.appointments.rescheduled)
	})

	t.Run("Past date is rejected", func(t *testing.T) {
		deps := newTestDeps()
		_, err := deps.usecase.Reschedule(ctx, &requests.RescheduleAppointmentRequest{
			AppointmentID: "apt-1",
			Date:          "2024-06-10",
			Slot:          "09:00 AM",
		})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
	})
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	assert.NoError(t, err)
	return parsed.In(time.Local)
}

func TestFindToday(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps()
	deps.appointments.byMonth["2024-06"] = []models.Appointment{
		{ID: "late", DateTime: "2024-06-12T15:00:00", CounselType: constvars.CounselTypeInPerson},
		{ID: "early", DateTime: "2024-06-12T08:00:00", CounselType: constvars.CounselTypeVirtual},
		{ID: "tomorrow", DateTime: "2024-06-13T08:00:00"},
		{ID: "broken", DateTime: "n/a"},
	}

	result, err := deps.usecase.FindToday(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-12", result.Date)
	assert.Len(t, result.Appointments, 2)
	assert.Equal(t, "early", result.Appointments[0].ID)
	assert.Equal(t, "Virtual (Online Meeting)", result.Appointments[0].Location)
	assert.Equal(t, "late", result.Appointments[1].ID)

	_, err = deps.usecase.FindToday(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, deps.appointments.findCalls, "second call is served from cache")

	deps = newTestDeps()
	deps.appointments.findErr = errFake
	_, err = deps.usecase.FindToday(ctx)
	assert.ErrorIs(t, err, errFake)
}
