package practitioners

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
)

type PractitionerUsecase interface {
	SearchPractitioners(ctx context.Context, request *requests.SearchPractitioner) ([]fhir_dto.Practitioner, int, error)
	GetPractitionerByID(ctx context.Context, practitionerID string) (*fhir_dto.Practitioner, error)
	CreatePractitioner(ctx context.Context, request *requests.CreatePractitioner) (*fhir_dto.Practitioner, error)
	UpdatePractitioner(ctx context.Context, request *requests.UpdatePractitioner) (*fhir_dto.Practitioner, error)
	DeletePractitioner(ctx context.Context, practitionerID string) error
}
