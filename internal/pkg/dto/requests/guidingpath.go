package requests

// GuidingPathCreateAppointment is the body of POST /api/createAppointment.
// ID is the originating referral/request id.
type GuidingPathCreateAppointment struct {
	Date        string `json:"date"`
	ID          string `json:"id"`
	Role        string `json:"role"`
	Notes       string `json:"notes"`
	Reason      string `json:"reason"`
	CounselType string `json:"counsel_type"`
}

// GuidingPathRescheduleAppointment is the body of POST /api/rescheduleAppointment.
type GuidingPathRescheduleAppointment struct {
	Date string `json:"date"`
	ID   string `json:"id"`
}
