package config

import (
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "telehealth"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CORSAllowedOrigin:          utils.GetEnvString("APP_CORS_ALLOWED_ORIGIN", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			AuthMaxAttempts:            utils.GetEnvInt("APP_AUTH_MAX_ATTEMPTS", 10),
			AuthBlockDurationInMinute:  utils.GetEnvInt("APP_AUTH_BLOCK_DURATION_IN_MINUTE", 5),
		},
		Medplum: Medplum{
			BaseUrl:          utils.GetEnvString("MEDPLUM_BASE_URL", "https://api.medplum.com"),
			ClientID:         utils.GetEnvString("MEDPLUM_CLIENT_ID", ""),
			ClientSecret:     utils.GetEnvString("MEDPLUM_CLIENT_SECRET", ""),
			UseMock:          utils.GetEnvBool("MEDPLUM_USE_MOCK", false),
			TimeoutInSeconds: utils.GetEnvInt("MEDPLUM_TIMEOUT_IN_SECONDS", 30),
		},
		JWT: JWT{
			Secret:                 utils.GetEnvString("JWT_SECRET", "anyjwt"),
			AccessTokenExpInMinute: utils.GetEnvInt("JWT_ACCESS_TOKEN_EXP_IN_MINUTE", 60),
			RefreshTokenExpInHour:  utils.GetEnvInt("JWT_REFRESH_TOKEN_EXP_IN_HOUR", 168),
			SessionTTLInHour:       utils.GetEnvInt("JWT_SESSION_TTL_IN_HOUR", 168),
		},
		Stripe: Stripe{
			SecretKey:     utils.GetEnvString("STRIPE_SECRET_KEY", ""),
			WebhookSecret: utils.GetEnvString("STRIPE_WEBHOOK_SECRET", ""),
		},
		Uploads: Uploads{
			MaxUploadSizeInMB:  utils.GetEnvInt64("APP_UPLOAD_MAX_SIZE_IN_MB", 5),
			Bucket:             utils.GetEnvString("MINIO_BUCKET_NAME", "telehealth-uploads"),
			PresignExpInMinute: utils.GetEnvInt("APP_UPLOAD_PRESIGN_EXP_IN_MINUTE", 15),
		},
		Mailer: Mailer{
			Queue:       utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "telehealth-mailer"),
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", ""),
		},
	}
}

// UseMockBackend reports whether the API should serve fixture data instead of
// proxying to Medplum. Missing client credentials force mock mode so local
// development works without an account.
func (c *InternalConfig) UseMockBackend() bool {
	if c.Medplum.UseMock {
		return true
	}
	return c.Medplum.ClientID == "" || c.Medplum.ClientSecret == ""
}
