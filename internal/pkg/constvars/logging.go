package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingUpstreamUrlKey        = "upstream_url"
	LoggingUpstreamStatusCodeKey = "upstream_status_code"
	LoggingMonthKey              = "month"
	LoggingDateKey               = "date"
	LoggingSlotKey               = "slot"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingReferralRequestIDKey  = "referral_request_id"
	LoggingAppointmentCountKey   = "appointment_count"
	LoggingGenerationKey         = "generation"

	LoggingCacheKey          = "cache_key"
	LoggingCacheHitKey       = "cache_hit"
	LoggingCacheTTLKey       = "cache_ttl"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingQueueNameKey      = "queue_name"
	LoggingEventTypeKey      = "event_type"
	LoggingCronSpecKey       = "cron_spec"
	LoggingCriteriaCountKey  = "criteria_count"
	LoggingAppraisalIDKey    = "appraisal_id"
	LoggingOperationKey      = "operation"
	LoggingBusinessEventKey  = "business_event"
	LoggingCategoryCountKey  = "category_count"
)
