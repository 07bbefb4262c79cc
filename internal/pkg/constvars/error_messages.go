package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"oneof":         "must be one of [%s]",
	"datetime":      "must follow the format %s",
	"not_past_date": "appointment date cannot be in the past",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "the requested data could not be found"
	ErrClientChamberTimeNotAvailable       = "The selected chamber time is not available"
	ErrClientBookingInProgress             = "a booking for this doctor and date is already being processed"
	ErrClientBackendUnavailable            = "the scheduling service is unavailable, please try again later"
	ErrClientTooManyBookingAttempts        = "too many booking attempts, please wait a moment and try again"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate            = "cannot parse the requested date"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamValidationFailed   = "url param '%s' is invalid"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevMissingSessionData         = "session data missing from context"
	ErrDevAuthTokenMissing           = "token missing"
	ErrDevAuthTokenInvalidOrExpired  = "token invalid or expired"
	ErrDevAuthSigningMethod          = "unexpected signing method"
	ErrDevAuthInvalidSession         = "invalid session"
	ErrDevInvalidCredentials         = "backend rejected the credentials"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevAuthRoleNotAllowed         = "role '%s' is not allowed"
	ErrDevAuthNotResourceOwner       = "session is not the owner of the %s"
	ErrDevUnknownRole                = "unknown role '%s'"
	ErrDevSessionMissingProfile      = "%s session has no profile id"
	ErrDevBackendResponse            = "backend responded %d for %s: %s"
	ErrDevBackendDecodeResponse      = "failed to decode backend response for %s"
	ErrDevBackendRateLimitWait       = "backend rate limiter wait aborted"
	ErrDevChamberTimeNotOffered      = "time slot '%s' is not offered for doctor %s on %s"
	ErrDevBookingLockHeld            = "booking lock %s already held"
	ErrDevRedisSetData               = "failed to set data into redis"
	ErrDevRedisGetData               = "failed to get data from redis with key %s"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisExpire                = "failed to extend expiry of redis key"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevRedisIncrement             = "failed to increment redis counter"
	ErrDevRedisPing                  = "redis did not answer ping"
	ErrDevBookingRateLimited         = "booking attempts for %s exceeded the limit, retry after %d seconds"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevRenderDocument             = "failed to render %s document"
	ErrDevInvalidAppointmentStatus   = "appointment status transition to '%s' is not allowed"
)
