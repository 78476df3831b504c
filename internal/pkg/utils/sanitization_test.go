package utils

import (
	"guidingpath-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	t.Run("Trims and normalises fields", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{
			RequestID:   "  req-1 ",
			Role:        " Student ",
			Date:        " 2024-06-13",
			Slot:        " 9:00  am ",
			CounselType: "VIRTUAL ",
			Reason:      "  career planning  ",
			Notes:       "\tbring transcript\n",
		}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "req-1", request.RequestID)
		assert.Equal(t, "student", request.Role)
		assert.Equal(t, "2024-06-13", request.Date)
		assert.Equal(t, "09:00 AM", request.Slot, "slot should be padded and upper-cased")
		assert.Equal(t, "virtual", request.CounselType)
		assert.Equal(t, "career planning", request.Reason)
		assert.Equal(t, "bring transcript", request.Notes)
	})

	t.Run("Canonical slot is unchanged", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{Slot: "12:00 PM"}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "12:00 PM", request.Slot)
	})

	t.Run("Garbage slot is left for validation", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{Slot: "noon"}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "NOON", request.Slot)
		assert.Error(t, ValidateVar(request.Slot, "slot_label"))
	})
}

func TestSanitizeRescheduleAppointmentRequest(t *testing.T) {
	request := &requests.RescheduleAppointmentRequest{
		AppointmentID: " appt-9 ",
		Date:          "2024-06-14 ",
		Slot:          "1:00 pm",
	}

	SanitizeRescheduleAppointmentRequest(request)

	assert.Equal(t, "appt-9", request.AppointmentID)
	assert.Equal(t, "2024-06-14", request.Date)
	assert.Equal(t, "01:00 PM", request.Slot)
}

func TestSanitizeEvaluateAppraisalRequest(t *testing.T) {
	request := &requests.EvaluateAppraisalRequest{
		AppraisalID: " ap-1 ",
		Categories: []requests.AppraisalCategoryAnswers{
			{Name: "  Study Habits ", Scores: []int{5}},
		},
	}

	SanitizeEvaluateAppraisalRequest(request)

	assert.Equal(t, "ap-1", request.AppraisalID)
	assert.Equal(t, "Study Habits", request.Categories[0].Name)
}
