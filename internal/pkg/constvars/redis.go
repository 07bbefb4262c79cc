package constvars

const (
	RedisSessionKeyFormat       = "session:%s"
	RedisDoctorListKeyFormat    = "cache:doctors:%s"
	RedisDoctorDetailKeyFormat  = "cache:doctor:%s"
	RedisBookingLockKeyFormat   = "lock:booking:%s:%s:%s"
	RedisDoctorCacheLeaderKey   = "doctorcache:leader"
	RedisDoctorListAllCacheHash = "all"

	// patient id, window number
	RedisBookingAttemptsKeyFormat = "ratelimit:booking:%s:%d"
)
