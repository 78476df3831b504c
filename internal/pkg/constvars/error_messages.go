package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s",
	"max":          "maximum at %s",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"dive":         "contains an invalid item",
	"date_only":    "must be a date formatted as YYYY-MM-DD",
	"month_key":    "must be a month formatted as YYYY-MM",
	"slot_label":   "must be a time formatted as hh:mm AM/PM",
	"counsel_type": "must be either 'virtual' or 'in_person'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientUpstreamUnavailable           = "the guidance service is unavailable, please try again"
	ErrClientDateNotSelectable             = "the selected date is not available for appointments"
	ErrClientSlotNotOffered                = "the selected time is not an offered slot"
	ErrClientSlotOccupied                  = "the selected time is already booked, please choose another slot"
	ErrClientRequestBodyTooLarge           = "request body is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevServerPanic              = "recovered from panic"
	ErrDevRequestBodyTooLarge      = "request body exceeds configured limit"
	ErrDevValidationFailed         = "validation failed"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"

	// Upstream API messages
	ErrDevCreateHTTPRequest      = "failed to create HTTP request for upstream %s"
	ErrDevSendHTTPRequest        = "failed to send HTTP request to upstream %s"
	ErrDevUpstreamResponse       = "upstream %s responded with status %d"
	ErrDevDecodeUpstreamResponse = "failed to decode upstream %s response"
	ErrDevUpstreamRateLimitWait  = "upstream rate limiter wait aborted"

	// Scheduling messages
	ErrDevDateNotSelectable = "date %s is a weekend or in the past"
	ErrDevSlotNotOffered    = "slot label %q is not part of the working hours"
	ErrDevSlotOccupied      = "slot %s on %s is already occupied"

	// Database messages
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"

	// Redis messages
	ErrDevRedisGetData     = "failed to get data from redis"
	ErrDevRedisSetData     = "failed to set data to redis"
	ErrDevRedisDeleteData  = "failed to delete data from redis"
	ErrDevRedisUnlock      = "failed to release redis lock"
	ErrDevCacheDecodeValue = "failed to decode cached value for key %s"

	// RabbitMQ messages
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitmq channel"
	ErrDevRabbitMQDeclareQueue   = "failed to declare rabbitmq queue %s"
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue %s"
)
