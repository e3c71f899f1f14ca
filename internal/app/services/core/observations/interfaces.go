package observations

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
)

type ObservationUsecase interface {
	SearchObservations(ctx context.Context, request *requests.SearchObservation) ([]fhir_dto.Observation, int, error)
	GetObservationByID(ctx context.Context, observationID string) (*fhir_dto.Observation, error)
	CreateObservation(ctx context.Context, request *requests.CreateObservation) (*fhir_dto.Observation, error)
	DeleteObservation(ctx context.Context, observationID string) error
}
