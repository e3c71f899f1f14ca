package constvars

const (
	MongoCollectionUsers    = "users"
	MongoCollectionServices = "services"
)

const (
	RedisSessionKeyFormat      = "session:%s"
	RedisRefreshTokenKeyFormat = "refresh_token:%s"
)

const (
	QueueTypeMailer = "mailer"
)

const (
	MailJobTypeAppointmentBooked    = "appointment_booked"
	MailJobTypeAppointmentCancelled = "appointment_cancelled"
)
