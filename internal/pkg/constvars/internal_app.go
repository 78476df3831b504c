package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "GDPTH_SVC_"
)

const (
	GuidingPathRoleCounselor = "counselor"
	GuidingPathRoleTeacher   = "teacher"
	GuidingPathRoleStudent   = "student"
)

const (
	CounselTypeVirtual  = "virtual"
	CounselTypeInPerson = "in_person"
)

const (
	AppointmentStatusPending     = "pending"
	AppointmentStatusScheduled   = "scheduled"
	AppointmentStatusRescheduled = "rescheduled"
	AppointmentStatusCompleted   = "completed"
	AppointmentStatusCancelled   = "cancelled"
)

const (
	SlotStatusAvailable = "available"
	SlotStatusOccupied  = "occupied"
)

const (
	// Layouts shared by the availability calculator and the HTTP layer.
	LayoutSlotLabel     = "03:04 PM"
	LayoutMonthKey      = "2006-01"
	LayoutDateOnly      = "2006-01-02"
	LayoutLocalDateTime = "2006-01-02T15:04:05"
)

const (
	LikertScoreMin = 1
	LikertScoreMax = 5
)
