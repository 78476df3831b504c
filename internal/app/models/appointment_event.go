package models

// AppointmentEvent is published to the notification queue after an
// appointment is created or rescheduled.
type AppointmentEvent struct {
	Type              string `json:"type"`
	AppointmentID     string `json:"appointment_id"`
	ReferralRequestID string `json:"referral_request_id,omitempty"`
	DateTime          string `json:"date_time"`
	CounselType       string `json:"counsel_type,omitempty"`
	Location          string `json:"location,omitempty"`
	OccurredAt        string `json:"occurred_at"`
}
