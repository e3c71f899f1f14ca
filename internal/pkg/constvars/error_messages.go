package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
	"datetime": "must be a valid datetime",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"eqfield":  true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "the requested data could not be found"
	ErrClientResourceTypeNotAllowed        = "the requested resource type is not supported"
	ErrClientUpstreamUnavailable           = "the clinical data service is currently unavailable"
	ErrClientFileTooLarge                  = "the file you uploaded exceeds the allowed size"
	ErrClientInvoiceNotPayable             = "this invoice can not be paid"
	ErrClientPaymentFailed                 = "payment could not be processed"
)

// Error messages for developers
const (
	ErrDevInvalidInput        = "invalid input"
	ErrDevCannotParseJSON     = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON   = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime     = "cannot parse time into the given format"
	ErrDevInvalidFormat       = "invalid %s format"
	ErrDevBuildRequest        = "encountering error while building request DTO"
	ErrDevDocumentNotFound    = "document not found"
	ErrDevInvalidCredentials  = "invalid credentials"
	ErrDevCreateHTTPRequest   = "failed to create HTTP request"
	ErrDevSendHTTPRequest     = "failed to send HTTP request"
	ErrDevUserNotExists       = "user not exists in our system"
	ErrDevFailedToHashPassword = "failed to hash password"

	// Validation messages
	ErrDevValidationFailed = "validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenExpired          = "token expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRefreshTokenUnknown   = "refresh token not found or already rotated"
	ErrDevAuthOAuthStateMissing     = "oauth state parameter missing"
	ErrDevAuthOAuthExchangeFailed   = "failed to exchange authorization code with identity provider"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisGetNoData      = "failed to get data from redis with key %s"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data into redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value on redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to create presigned url for object on bucket %s"

	// SMTP messages
	ErrDevSMTPSendEmail = "failed to send email via SMTP client hostname %s"

	// Medplum messages
	ErrDevMedplumCreateFHIRResource   = "failed to create FHIR %s on medplum"
	ErrDevMedplumUpdateFHIRResource   = "failed to update FHIR %s on medplum"
	ErrDevMedplumGetFHIRResource      = "failed to get FHIR %s from medplum"
	ErrDevMedplumDeleteFHIRResource   = "failed to delete FHIR %s on medplum"
	ErrDevMedplumSearchFHIRResource   = "failed to search FHIR %s on medplum"
	ErrDevMedplumResourceNotFound     = "FHIR %s not found on medplum"
	ErrDevMedplumDecodeFHIRResponse   = "failed to decode FHIR %s response from medplum"
	ErrDevMedplumFetchToken           = "failed to fetch access token from medplum"
	ErrDevMedplumUpstreamUnavailable  = "medplum upstream returned an unexpected status"
	ErrDevFhirResourceTypeNotAllowed  = "resource type %s is not in the allowlist"
	ErrDevFhirResourceIDMismatch      = "resource id in payload does not match the id in the url"

	// Payment messages
	ErrDevStripeCreatePaymentIntent    = "failed to create payment intent on stripe"
	ErrDevStripeInvalidWebhookSignature = "stripe webhook signature verification failed"
	ErrDevInvoiceNotPayable             = "invoice is not in a payable status"

	// Server messages
	ErrDevServerProcess          = "error while processing the request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerReadBody         = "failed to read request body"
	ErrDevServerBodyTooLarge     = "request body exceeds the configured limit"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
