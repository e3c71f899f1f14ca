package constvars

const (
	URLParamResourceType  = "resource_type"
	URLParamResourceID    = "resource_id"
	URLParamPatientID     = "patient_id"
	URLParamPractitionerID = "practitioner_id"
	URLParamAppointmentID = "appointment_id"
	URLParamObservationID = "observation_id"
	URLParamMedicationRequestID = "medication_request_id"
	URLParamInvoiceID     = "invoice_id"
	URLParamObjectName    = "object_name"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamLimit    = "limit"

	URLQueryParamName       = "name"
	URLQueryParamIdentifier = "identifier"
	URLQueryParamGender     = "gender"
	URLQueryParamBirthdate  = "birthdate"
	URLQueryParamSpecialty  = "specialty"
	URLQueryParamActive     = "active"
	URLQueryParamPatient    = "patient"
	URLQueryParamPractitioner = "practitioner"
	URLQueryParamStatus     = "status"
	URLQueryParamDate       = "date"
	URLQueryParamCategory   = "category"
	URLQueryParamCode       = "code"
	URLQueryParamIntent     = "intent"

	URLQueryParamOAuthCode  = "code"
	URLQueryParamOAuthState = "state"
)
