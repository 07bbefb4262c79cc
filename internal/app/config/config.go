package config

import (
	"chamber-portal-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:    utils.GetEnvString("RABBITMQ_VHOST", ""),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Dhaka"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		Backend: AppBackend{
			BaseUrl:                   utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000/api"),
			RequestTimeoutInSeconds:   utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RateLimitPerSecond:        utils.GetEnvFloat("BACKEND_RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:            utils.GetEnvInt("BACKEND_RATE_LIMIT_BURST", 100),
			MaxResponseBodyInMegabyte: utils.GetEnvInt("BACKEND_MAX_RESPONSE_BODY_IN_MEGABYTE", 10),
			ServiceToken:              utils.GetEnvString("BACKEND_SERVICE_TOKEN", ""),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Session: AppSession{
			ExpiredTimeInHours: utils.GetEnvInt("SESSION_EXP_TIME_IN_HOURS", 24),
		},
		Booking: AppBooking{
			LockTTLInSeconds:       utils.GetEnvInt("BOOKING_LOCK_TTL_IN_SECONDS", 30),
			RateLimitPerMinute:     utils.GetEnvInt("BOOKING_RATE_LIMIT_PER_MINUTE", 5),
			RateLimitWindowSeconds: 60,
		},
		Export: AppExport{
			BucketName:             utils.GetEnvString("EXPORT_BUCKET_NAME", "prescriptions"),
			URLExpiryTimeInMinutes: utils.GetEnvInt("EXPORT_URL_EXPIRY_IN_MINUTES", 15),
		},
		Cache: AppCache{
			DoctorsTTLInSeconds:       utils.GetEnvInt("CACHE_DOCTORS_TTL_IN_SECONDS", 300),
			DoctorCacheWorkerCronSpec: utils.GetEnvString("DOCTOR_CACHE_WORKER_CRON_SPEC", "@every 15m"),
			DoctorCacheWorkerEnabled:  utils.GetEnvBool("DOCTOR_CACHE_WORKER_ENABLED", true),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("RABBITMQ_NOTIFICATION_QUEUE", "appointment_notifications"),
		},
		CORS: AppCORS{
			AllowedOrigins: utils.GetEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}
}
