package config

type InternalConfig struct {
	App      App
	Backend  AppBackend
	JWT      AppJWT
	Session  AppSession
	Booking  AppBooking
	Export   AppExport
	Cache    AppCache
	RabbitMQ AppRabbitMQ
	CORS     AppCORS
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

// AppBackend points at the REST backend that owns doctors, appointments and patients.
type AppBackend struct {
	BaseUrl                   string
	RequestTimeoutInSeconds   int
	RateLimitPerSecond        float64
	RateLimitBurst            int
	MaxResponseBodyInMegabyte int

	// ServiceToken authenticates calls made outside a user session, such as
	// the doctor directory warm-up. Empty means those endpoints are public.
	ServiceToken string
}

type AppJWT struct {
	Secret string
}

type AppSession struct {
	ExpiredTimeInHours int
}

type AppBooking struct {
	LockTTLInSeconds int
	// RateLimitPerMinute of zero disables the per-patient booking limiter.
	RateLimitPerMinute     int
	RateLimitWindowSeconds int
}

type AppExport struct {
	BucketName             string
	URLExpiryTimeInMinutes int
}

type AppCache struct {
	DoctorsTTLInSeconds int
	// DoctorCacheWorkerCronSpec is a robfig/cron spec, e.g. "@every 15m".
	DoctorCacheWorkerCronSpec string
	DoctorCacheWorkerEnabled  bool
}

type AppRabbitMQ struct {
	NotificationQueue string
}

type AppCORS struct {
	AllowedOrigins []string
}
