package constvars

// Upstream Guiding Path API routes.
const (
	GuidingPathPathGetAllAppointments    = "/api/getAllAppointments"
	GuidingPathPathCreateAppointment     = "/api/createAppointment"
	GuidingPathPathRescheduleAppointment = "/api/rescheduleAppointment"
	GuidingPathPathDeleteRequest         = "/api/deleteRequest"
)

const (
	GuidingPathQueryMonth = "month"
	GuidingPathQueryID    = "id"
)

const (
	ResourceAppointment = "appointment"
	ResourceRequest     = "request"
)
