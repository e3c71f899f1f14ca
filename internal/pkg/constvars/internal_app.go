package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "TLHLTH_SVC_"
)

const (
	TelehealthRoleAdmin    = "admin"
	TelehealthRoleProvider = "provider"
	TelehealthRoleStaff    = "staff"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
