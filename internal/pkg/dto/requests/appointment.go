package requests

type SearchAppointment struct {
	Patient      string
	Practitioner string
	Status       string `validate:"omitempty,oneof=proposed pending booked arrived fulfilled cancelled noshow checked-in"`
	Date         string `validate:"omitempty,datetime=2006-01-02"`
	Pagination   *Pagination
}

type CreateAppointment struct {
	PatientReference      string `json:"patient_reference" validate:"required"`
	PractitionerReference string `json:"practitioner_reference" validate:"required"`
	Start                 string `json:"start" validate:"required"`
	End                   string `json:"end" validate:"required"`
	Status                string `json:"status" validate:"omitempty,oneof=proposed pending booked"`
	Description           string `json:"description" validate:"omitempty,max=500"`
	ServiceType           string `json:"service_type" validate:"omitempty,max=100"`
	PatientEmail          string `json:"patient_email" validate:"omitempty,email"`
}

type UpdateAppointmentStatus struct {
	Status       string `json:"status" validate:"required,oneof=booked arrived fulfilled cancelled noshow"`
	PatientEmail string `json:"patient_email" validate:"omitempty,email"`
}
