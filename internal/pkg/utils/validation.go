package utils

import (
	"regexp"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("fhir_reference", validateFhirReference)
	validate.RegisterValidation("fhir_id", validateFhirResourceID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateFhirReference(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexFhirReference)
	return re.MatchString(fl.Field().String())
}

func validateFhirResourceID(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexFhirResourceID)
	return re.MatchString(fl.Field().String())
}
