package observations

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	observationUsecaseInstance ObservationUsecase
	onceObservationUsecase     sync.Once
)

type observationUsecase struct {
	FHIRBackend contracts.FHIRBackend
	Log         *zap.Logger
}

func NewObservationUsecase(fhirBackend contracts.FHIRBackend, logger *zap.Logger) ObservationUsecase {
	onceObservationUsecase.Do(func() {
		observationUsecaseInstance = &observationUsecase{
			FHIRBackend: fhirBackend,
			Log:         logger,
		}
	})
	return observationUsecaseInstance
}

func (uc *observationUsecase) SearchObservations(ctx context.Context, request *requests.SearchObservation) ([]fhir_dto.Observation, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("observationUsecase.SearchObservations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	if request.Patient != "" {
		params.Set(constvars.URLQueryParamPatient, request.Patient)
	}
	if request.Category != "" {
		params.Set(constvars.URLQueryParamCategory, request.Category)
	}
	if request.Code != "" {
		params.Set(constvars.URLQueryParamCode, request.Code)
	}
	params.Set(constvars.FhirSearchParamCount, strconv.Itoa(request.Pagination.PageSize))
	params.Set(constvars.FhirSearchParamOffset, strconv.Itoa(request.Pagination.Offset()))

	bundle, err := uc.FHIRBackend.SearchResources(ctx, constvars.ResourceObservation, params)
	if err != nil {
		return nil, 0, err
	}

	observations, err := utils.DecodeBundleEntries[fhir_dto.Observation](bundle)
	if err != nil {
		return nil, 0, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceObservation)
	}
	return observations, bundle.Total, nil
}

func (uc *observationUsecase) GetObservationByID(ctx context.Context, observationID string) (*fhir_dto.Observation, error) {
	raw, err := uc.FHIRBackend.ReadResource(ctx, constvars.ResourceObservation, observationID)
	if err != nil {
		return nil, err
	}

	observation := new(fhir_dto.Observation)
	if err := json.Unmarshal(raw, observation); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceObservation)
	}
	return observation, nil
}

func (uc *observationUsecase) CreateObservation(ctx context.Context, request *requests.CreateObservation) (*fhir_dto.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("observationUsecase.CreateObservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	effective := request.EffectiveAt
	if effective == "" {
		effective = time.Now().UTC().Format(time.RFC3339)
	}

	resource := &fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		Status:       request.Status,
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{Code: request.Code, Display: request.CodeDisplay}},
			Text:   request.CodeDisplay,
		},
		Subject:           &fhir_dto.Reference{Reference: request.PatientReference},
		EffectiveDateTime: effective,
	}
	if request.Category != "" {
		resource.Category = []fhir_dto.CodeableConcept{{Text: request.Category}}
	}
	if request.Unit != "" || request.Value != 0 {
		resource.ValueQuantity = &fhir_dto.Quantity{
			Value: request.Value,
			Unit:  request.Unit,
		}
	}

	payload, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	raw, err := uc.FHIRBackend.CreateResource(ctx, constvars.ResourceObservation, payload)
	if err != nil {
		return nil, err
	}

	created := new(fhir_dto.Observation)
	if err := json.Unmarshal(raw, created); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceObservation)
	}
	return created, nil
}

func (uc *observationUsecase) DeleteObservation(ctx context.Context, observationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("observationUsecase.DeleteObservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, observationID),
	)
	return uc.FHIRBackend.DeleteResource(ctx, constvars.ResourceObservation, observationID)
}
