package utils

import (
	"guidingpath-service/internal/pkg/dto/requests"
	"strings"
)

// sanitizeSlotLabel upper-cases the meridiem and zero-pads the hour, so
// " 9:00 am" becomes "09:00 AM". Anything else is left for validation.
func sanitizeSlotLabel(label string) string {
	label = strings.ToUpper(strings.Join(strings.Fields(label), " "))
	if colon := strings.IndexByte(label, ':'); colon == 1 {
		label = "0" + label
	}
	return label
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointmentRequest) {
	input.RequestID = strings.TrimSpace(input.RequestID)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.Date = strings.TrimSpace(input.Date)
	input.Slot = sanitizeSlotLabel(input.Slot)
	input.CounselType = strings.ToLower(strings.TrimSpace(input.CounselType))
	input.Reason = strings.TrimSpace(input.Reason)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeRescheduleAppointmentRequest(input *requests.RescheduleAppointmentRequest) {
	input.AppointmentID = strings.TrimSpace(input.AppointmentID)
	input.Date = strings.TrimSpace(input.Date)
	input.Slot = sanitizeSlotLabel(input.Slot)
}

func SanitizeEvaluateAppraisalRequest(input *requests.EvaluateAppraisalRequest) {
	input.AppraisalID = strings.TrimSpace(input.AppraisalID)
	input.StudentID = strings.TrimSpace(input.StudentID)
	for i := range input.Categories {
		input.Categories[i].Name = strings.TrimSpace(input.Categories[i].Name)
	}
}
