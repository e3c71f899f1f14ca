package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccessMessage         = "successfully login"
	LogoutSuccessMessage        = "successfully logout"
	RefreshTokenSuccessMessage  = "token refreshed successfully"
	TokenValidSuccessMessage    = "token is valid"
	GetProfileSuccessMessage    = "get profile successfully"
	OAuthCallbackSuccessMessage = "authorization code exchanged successfully"

	// FHIR resource messages
	GetResourcesSuccessMessage    = "get %s successfully"
	GetResourceSuccessMessage     = "get %s successfully"
	CreateResourceSuccessMessage  = "%s created successfully"
	UpdateResourceSuccessMessage  = "%s updated successfully"
	DeleteResourceSuccessMessage  = "%s deleted successfully"
	UpdateAppointmentStatusSuccessMessage = "appointment status updated successfully"

	// Catalog messages
	GetServicesSuccessMessage = "get services successfully"

	// Health messages
	HealthCheckSuccessMessage = "service is healthy"

	// Upload messages
	UploadFileSuccessMessage  = "file uploaded successfully"
	GetFileURLSuccessMessage  = "get file url successfully"

	// Payment messages
	CreatePaymentIntentSuccessMessage = "payment intent created successfully"
	PaymentWebhookSuccessMessage      = "webhook processed successfully"
)
