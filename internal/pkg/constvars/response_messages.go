package constvars

const (
	ResponseUnknown = "unknown"

	GetDaySlotsSuccessMessage           = "get available slots successfully"
	GetMonthCalendarSuccessMessage      = "get month calendar successfully"
	CreateAppointmentSuccessMessage     = "appointment created successfully"
	RescheduleAppointmentSuccessMessage = "appointment rescheduled successfully"
	GetTodayAppointmentsSuccessMessage  = "get today appointments successfully"
	GetDashboardReportSuccessMessage    = "get dashboard report successfully"
	EvaluateAppraisalSuccessMessage     = "appraisal evaluated successfully"
	HealthCheckSuccessMessage           = "service is healthy"
)
