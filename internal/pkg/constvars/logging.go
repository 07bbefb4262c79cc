package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSessionDataKey        = "session_data"
	LoggingSessionIDKey          = "session_id"
	LoggingQueryParamsKey        = "query_params"
	LoggingResponseKey           = "response"
	LoggingRequestKey            = "request"
	LoggingResponseLengthKey     = "response_length"
	LoggingResponseCountKey      = "response_count"
	LoggingRoleKey               = "role"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingRecordIDKey           = "record_id"
	LoggingPrescriptionIDKey     = "prescription_id"
	LoggingDateKey               = "date"
	LoggingWeekdayKey            = "weekday"
	LoggingFallbackKey           = "fallback"
	LoggingOptionCountKey        = "option_count"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingCacheHitKey           = "cache_hit"
	LoggingBackendURLKey         = "backend_url"
	LoggingBackendStatusKey      = "backend_status"
	LoggingEventKey              = "event"
	LoggingQueueKey              = "queue"
	LoggingBucketKey             = "bucket"
	LoggingObjectKey             = "object"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingOperationKey          = "operation"
	LoggingAttemptsKey           = "attempts"
	LoggingRetryAfterKey         = "retry_after"
)
