package medications

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
	medicationUsecaseInstance MedicationUsecase
	onceMedicationUsecase     sync.Once
)

type medicationUsecase struct {
	FHIRBackend contracts.FHIRBackend
	Log         *zap.Logger
}

func NewMedicationUsecase(fhirBackend contracts.FHIRBackend, logger *zap.Logger) MedicationUsecase {
	onceMedicationUsecase.Do(func() {
		medicationUsecaseInstance = &medicationUsecase{
			FHIRBackend: fhirBackend,
			Log:         logger,
		}
	})
	return medicationUsecaseInstance
}

func (uc *medicationUsecase) SearchMedicationRequests(ctx context.Context, request *requests.SearchMedicationRequest) ([]fhir_dto.MedicationRequest, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.SearchMedicationRequests called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	if request.Patient != "" {
		params.Set(constvars.URLQueryParamPatient, request.Patient)
	}
	if request.Status != "" {
		params.Set(constvars.URLQueryParamStatus, request.Status)
	}
	if request.Intent != "" {
		params.Set(constvars.URLQueryParamIntent, request.Intent)
	}
	params.Set(constvars.FhirSearchParamCount, strconv.Itoa(request.Pagination.PageSize))
	params.Set(constvars.FhirSearchParamOffset, strconv.Itoa(request.Pagination.Offset()))

	bundle, err := uc.FHIRBackend.SearchResources(ctx, constvars.ResourceMedicationRequest, params)
	if err != nil {
		return nil, 0, err
	}

	medicationRequests, err := utils.DecodeBundleEntries[fhir_dto.MedicationRequest](bundle)
	if err != nil {
		return nil, 0, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceMedicationRequest)
	}
	return medicationRequests, bundle.Total, nil
}

func (uc *medicationUsecase) GetMedicationRequestByID(ctx context.Context, medicationRequestID string) (*fhir_dto.MedicationRequest, error) {
	raw, err := uc.FHIRBackend.ReadResource(ctx, constvars.ResourceMedicationRequest, medicationRequestID)
	if err != nil {
		return nil, err
	}

	medicationRequest := new(fhir_dto.MedicationRequest)
	if err := json.Unmarshal(raw, medicationRequest); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceMedicationRequest)
	}
	return medicationRequest, nil
}

func (uc *medicationUsecase) CreateMedicationRequest(ctx context.Context, request *requests.CreateMedicationRequest) (*fhir_dto.MedicationRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.CreateMedicationRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	status := request.Status
	if status == "" {
		status = constvars.FhirMedicationRequestStatusActive
	}
	intent := request.Intent
	if intent == "" {
		intent = "order"
	}
	authoredOn := request.AuthoredOn
	if authoredOn == "" {
		authoredOn = time.Now().UTC().Format("2006-01-02")
	}

	resource := &fhir_dto.MedicationRequest{
		ResourceType: constvars.ResourceMedicationRequest,
		Status:       status,
		Intent:       intent,
		MedicationCodeableConcept: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{Code: request.MedicationCode, Display: request.MedicationDisplay}},
			Text:   request.MedicationDisplay,
		},
		Subject:    fhir_dto.Reference{Reference: request.PatientReference},
		AuthoredOn: authoredOn,
	}
	if request.RequesterReference != "" {
		resource.Requester = &fhir_dto.Reference{Reference: request.RequesterReference}
	}
	if request.DosageText != "" {
		resource.DosageInstruction = []fhir_dto.Dosage{{Text: request.DosageText}}
	}

	payload, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	raw, err := uc.FHIRBackend.CreateResource(ctx, constvars.ResourceMedicationRequest, payload)
	if err != nil {
		return nil, err
	}

	created := new(fhir_dto.MedicationRequest)
	if err := json.Unmarshal(raw, created); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceMedicationRequest)
	}
	return created, nil
}

func (uc *medicationUsecase) DeleteMedicationRequest(ctx context.Context, medicationRequestID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicationUsecase.DeleteMedicationRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, medicationRequestID),
	)
	return uc.FHIRBackend.DeleteResource(ctx, constvars.ResourceMedicationRequest, medicationRequestID)
}
