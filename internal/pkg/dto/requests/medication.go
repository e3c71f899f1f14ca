package requests

type SearchMedicationRequest struct {
	Patient    string
	Status     string `validate:"omitempty,oneof=active on-hold cancelled completed stopped draft"`
	Intent     string `validate:"omitempty,oneof=proposal plan order original-order"`
	Pagination *Pagination
}

type CreateMedicationRequest struct {
	PatientReference    string `json:"patient_reference" validate:"required"`
	RequesterReference  string `json:"requester_reference" validate:"omitempty"`
	MedicationCode      string `json:"medication_code" validate:"required,max=100"`
	MedicationDisplay   string `json:"medication_display" validate:"required,max=200"`
	Status              string `json:"status" validate:"omitempty,oneof=active draft"`
	Intent              string `json:"intent" validate:"omitempty,oneof=proposal plan order"`
	DosageText          string `json:"dosage_text" validate:"omitempty,max=500"`
	AuthoredOn          string `json:"authored_on" validate:"omitempty"`
}
