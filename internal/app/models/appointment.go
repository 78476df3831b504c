package models

import (
	"guidingpath-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

// Appointment mirrors the record returned by the Guiding Path API.
// DateTime is kept as the raw upstream string; use availability.ParseDateTime
// to interpret it in local time.
type Appointment struct {
	ID          string          `json:"id"`
	DateTime    string          `json:"date_time"`
	CounselType string          `json:"counsel_type"`
	Reason      string          `json:"reason,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Student     json.RawMessage `json:"student,omitempty"`
	Status      string          `json:"status,omitempty"`
}

func (a Appointment) ConvertIntoResponse(location string) responses.Appointment {
	return responses.Appointment{
		ID:          a.ID,
		DateTime:    a.DateTime,
		CounselType: a.CounselType,
		Location:    location,
		Reason:      a.Reason,
		Notes:       a.Notes,
		Student:     a.Student,
		Status:      a.Status,
	}
}
