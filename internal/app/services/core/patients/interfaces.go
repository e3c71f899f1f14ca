package patients

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
)

type PatientUsecase interface {
	SearchPatients(ctx context.Context, request *requests.SearchPatient) ([]fhir_dto.Patient, int, error)
	GetPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*fhir_dto.Patient, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*fhir_dto.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}
