package constvars

const (
	RegexEmail           = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexAlphanumeric    = `^[a-zA-Z0-9]+$`
	RegexNumeric         = `^\d+$`
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
	RegexDateTimeISO8601 = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})$`
	RegexFhirReference   = `^[A-Za-z]+\/[A-Za-z0-9\-\.]{1,64}$`
	RegexFhirResourceID  = `^[A-Za-z0-9\-\.]{1,64}$`
)
