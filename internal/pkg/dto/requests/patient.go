package requests

type SearchPatient struct {
	Name       string
	Identifier string
	Gender     string `validate:"omitempty,oneof=male female other unknown"`
	Birthdate  string `validate:"omitempty,datetime=2006-01-02"`
	Pagination *Pagination
}

type CreatePatient struct {
	FamilyName   string   `json:"family_name" validate:"required,max=100"`
	GivenNames   []string `json:"given_names" validate:"required,min=1,dive,required,max=100"`
	Gender       string   `json:"gender" validate:"required,oneof=male female other unknown"`
	BirthDate    string   `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone" validate:"omitempty,max=20"`
	Identifier   string   `json:"identifier" validate:"omitempty,max=64"`
	AddressLines []string `json:"address_lines" validate:"omitempty,dive,max=200"`
	City         string   `json:"city" validate:"omitempty,max=100"`
	State        string   `json:"state" validate:"omitempty,max=100"`
	PostalCode   string   `json:"postal_code" validate:"omitempty,max=20"`
}

type UpdatePatient struct {
	ID           string   `json:"id" validate:"required"`
	FamilyName   string   `json:"family_name" validate:"required,max=100"`
	GivenNames   []string `json:"given_names" validate:"required,min=1,dive,required,max=100"`
	Gender       string   `json:"gender" validate:"required,oneof=male female other unknown"`
	BirthDate    string   `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone" validate:"omitempty,max=20"`
	Active       *bool    `json:"active"`
	AddressLines []string `json:"address_lines" validate:"omitempty,dive,max=200"`
	City         string   `json:"city" validate:"omitempty,max=100"`
	State        string   `json:"state" validate:"omitempty,max=100"`
	PostalCode   string   `json:"postal_code" validate:"omitempty,max=20"`
}
