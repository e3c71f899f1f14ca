package utils

import (
	"strings"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
)

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.FamilyName = strings.TrimSpace(request.FamilyName)
	for i := range request.GivenNames {
		request.GivenNames[i] = strings.TrimSpace(request.GivenNames[i])
	}
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Identifier = strings.TrimSpace(request.Identifier)
}

func SanitizeUpdatePatientRequest(request *requests.UpdatePatient) {
	request.FamilyName = strings.TrimSpace(request.FamilyName)
	for i := range request.GivenNames {
		request.GivenNames[i] = strings.TrimSpace(request.GivenNames[i])
	}
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
}

func SanitizeCreatePractitionerRequest(request *requests.CreatePractitioner) {
	request.FamilyName = strings.TrimSpace(request.FamilyName)
	for i := range request.GivenNames {
		request.GivenNames[i] = strings.TrimSpace(request.GivenNames[i])
	}
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Specialty = strings.TrimSpace(request.Specialty)
}

func SanitizeUpdatePractitionerRequest(request *requests.UpdatePractitioner) {
	request.FamilyName = strings.TrimSpace(request.FamilyName)
	for i := range request.GivenNames {
		request.GivenNames[i] = strings.TrimSpace(request.GivenNames[i])
	}
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Specialty = strings.TrimSpace(request.Specialty)
}

func SanitizeCreateAppointmentRequest(request *requests.CreateAppointment) {
	request.PatientReference = strings.TrimSpace(request.PatientReference)
	request.PractitionerReference = strings.TrimSpace(request.PractitionerReference)
	request.Description = strings.TrimSpace(request.Description)
	request.PatientEmail = strings.ToLower(strings.TrimSpace(request.PatientEmail))
}
