package responses

import "github.com/goccy/go-json"

type Appointment struct {
	ID          string          `json:"id"`
	DateTime    string          `json:"date_time"`
	CounselType string          `json:"counsel_type"`
	Location    string          `json:"location"`
	Reason      string          `json:"reason,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Student     json.RawMessage `json:"student,omitempty"`
	Status      string          `json:"status,omitempty"`
}

type CreateAppointment struct {
	Appointment       Appointment `json:"appointment"`
	RequestID         string      `json:"request_id"`
	RequestDeleted    bool        `json:"request_deleted"`
	ScheduledDateTime string      `json:"scheduled_date_time"`
}

type RescheduleAppointment struct {
	Appointment       Appointment `json:"appointment"`
	ScheduledDateTime string      `json:"scheduled_date_time"`
}

type TodayAppointments struct {
	Date         string        `json:"date"`
	Appointments []Appointment `json:"appointments"`
}
