package requests

type SearchPractitioner struct {
	Name       string
	Specialty  string
	Active     string `validate:"omitempty,oneof=true false"`
	Pagination *Pagination
}

type CreatePractitioner struct {
	FamilyName string   `json:"family_name" validate:"required,max=100"`
	GivenNames []string `json:"given_names" validate:"required,min=1,dive,required,max=100"`
	Email      string   `json:"email" validate:"omitempty,email"`
	Phone      string   `json:"phone" validate:"omitempty,max=20"`
	Specialty  string   `json:"specialty" validate:"omitempty,max=100"`
	Qualification string `json:"qualification" validate:"omitempty,max=200"`
}

type UpdatePractitioner struct {
	ID         string   `json:"id" validate:"required"`
	FamilyName string   `json:"family_name" validate:"required,max=100"`
	GivenNames []string `json:"given_names" validate:"required,min=1,dive,required,max=100"`
	Email      string   `json:"email" validate:"omitempty,email"`
	Phone      string   `json:"phone" validate:"omitempty,max=20"`
	Specialty  string   `json:"specialty" validate:"omitempty,max=100"`
	Active     *bool    `json:"active"`
}
