package utils

import (
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.Login{
			Email:    "  ADMIN@Example.COM  ",
			Password: "supersecret",
		}

		SanitizeLoginRequest(request)

		assert.Equal(t, "admin@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "supersecret", request.Password, "password should be untouched")
	})
}

func TestSanitizeCreatePatientRequest(t *testing.T) {
	t.Run("Trims Names and Contact Fields", func(t *testing.T) {
		request := &requests.CreatePatient{
			FamilyName: "  Johnson  ",
			GivenNames: []string{"  Sarah  ", " Marie "},
			Email:      "  SARAH.JOHNSON@Example.com ",
			Phone:      " +1-555-0101 ",
			Identifier: " MRN-1001 ",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "Johnson", request.FamilyName)
		assert.Equal(t, []string{"Sarah", "Marie"}, request.GivenNames)
		assert.Equal(t, "sarah.johnson@example.com", request.Email)
		assert.Equal(t, "+1-555-0101", request.Phone)
		assert.Equal(t, "MRN-1001", request.Identifier)
	})

	t.Run("Empty Given Names", func(t *testing.T) {
		request := &requests.CreatePatient{
			FamilyName: "Chen",
			GivenNames: []string{},
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "Chen", request.FamilyName)
		assert.Empty(t, request.GivenNames)
	})
}

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	request := &requests.CreateAppointment{
		PatientReference:      " Patient/patient-001 ",
		PractitionerReference: " Practitioner/practitioner-001 ",
		Description:           "  Follow-up visit  ",
		PatientEmail:          " Sarah.Johnson@Example.com ",
	}

	SanitizeCreateAppointmentRequest(request)

	assert.Equal(t, "Patient/patient-001", request.PatientReference)
	assert.Equal(t, "Practitioner/practitioner-001", request.PractitionerReference)
	assert.Equal(t, "Follow-up visit", request.Description)
	assert.Equal(t, "sarah.johnson@example.com", request.PatientEmail)
}
