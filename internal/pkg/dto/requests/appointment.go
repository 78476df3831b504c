package requests

type CreateAppointmentRequest struct {
	RequestID   string `json:"request_id" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=counselor teacher student"`
	Date        string `json:"date" validate:"required,date_only"`
	Slot        string `json:"slot" validate:"required,slot_label"`
	CounselType string `json:"counsel_type" validate:"required,counsel_type"`
	Reason      string `json:"reason" validate:"required,max=500"`
	Notes       string `json:"notes" validate:"max=2000"`
}

type RescheduleAppointmentRequest struct {
	AppointmentID string `json:"-" validate:"required"`
	Date          string `json:"date" validate:"required,date_only"`
	Slot          string `json:"slot" validate:"required,slot_label"`
}
