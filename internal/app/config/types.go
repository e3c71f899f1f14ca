package config

type (
	InternalConfig struct {
		App     App
		Medplum Medplum
		JWT     JWT
		Stripe  Stripe
		Uploads Uploads
		Mailer  Mailer
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		CORSAllowedOrigin          string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		AuthMaxAttempts            int
		AuthBlockDurationInMinute  int
	}

	Medplum struct {
		BaseUrl          string
		ClientID         string
		ClientSecret     string
		UseMock          bool
		TimeoutInSeconds int
	}

	JWT struct {
		Secret                    string
		AccessTokenExpInMinute    int
		RefreshTokenExpInHour     int
		SessionTTLInHour          int
	}

	Stripe struct {
		SecretKey     string
		WebhookSecret string
	}

	Uploads struct {
		MaxUploadSizeInMB int64
		Bucket            string
		PresignExpInMinute int
	}

	Mailer struct {
		Queue       string
		EmailSender string
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host     string
		Port     string
		Username string
		Password string
		UseSSL   bool
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
