package medications

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
)

type MedicationUsecase interface {
	SearchMedicationRequests(ctx context.Context, request *requests.SearchMedicationRequest) ([]fhir_dto.MedicationRequest, int, error)
	GetMedicationRequestByID(ctx context.Context, medicationRequestID string) (*fhir_dto.MedicationRequest, error)
	CreateMedicationRequest(ctx context.Context, request *requests.CreateMedicationRequest) (*fhir_dto.MedicationRequest, error)
	DeleteMedicationRequest(ctx context.Context, medicationRequestID string) error
}
