package constvars

const (
	URLParamDate          = "date"
	URLParamMonth         = "month"
	URLParamAppointmentID = "id"
)
