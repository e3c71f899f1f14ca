package requests

type SearchObservation struct {
	Patient    string
	Category   string
	Code       string
	Pagination *Pagination
}

type CreateObservation struct {
	PatientReference string  `json:"patient_reference" validate:"required"`
	Status           string  `json:"status" validate:"required,oneof=registered preliminary final amended"`
	Category         string  `json:"category" validate:"omitempty,max=100"`
	Code             string  `json:"code" validate:"required,max=100"`
	CodeDisplay      string  `json:"code_display" validate:"omitempty,max=200"`
	Value            float64 `json:"value"`
	Unit             string  `json:"unit" validate:"omitempty,max=50"`
	EffectiveAt      string  `json:"effective_at" validate:"omitempty"`
}
