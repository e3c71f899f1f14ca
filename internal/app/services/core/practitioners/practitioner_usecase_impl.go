package practitioners

import (
	"context"
	"net/url"
	"strconv"
	"sync"

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
	practitionerUsecaseInstance PractitionerUsecase
	oncePractitionerUsecase     sync.Once
)

type practitionerUsecase struct {
	FHIRBackend contracts.FHIRBackend
	Log         *zap.Logger
}

func NewPractitionerUsecase(fhirBackend contracts.FHIRBackend, logger *zap.Logger) PractitionerUsecase {
	oncePractitionerUsecase.Do(func() {
		practitionerUsecaseInstance = &practitionerUsecase{
			FHIRBackend: fhirBackend,
			Log:         logger,
		}
	})
	return practitionerUsecaseInstance
}

func (uc *practitionerUsecase) SearchPractitioners(ctx context.Context, request *requests.SearchPractitioner) ([]fhir_dto.Practitioner, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("practitionerUsecase.SearchPractitioners called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	if request.Name != "" {
		params.Set(constvars.URLQueryParamName, request.Name)
	}
	if request.Specialty != "" {
		params.Set(constvars.URLQueryParamSpecialty, request.Specialty)
	}
	if request.Active != "" {
		params.Set(constvars.URLQueryParamActive, request.Active)
	}
	params.Set(constvars.FhirSearchParamCount, strconv.Itoa(request.Pagination.PageSize))
	params.Set(constvars.FhirSearchParamOffset, strconv.Itoa(request.Pagination.Offset()))

	bundle, err := uc.FHIRBackend.SearchResources(ctx, constvars.ResourcePractitioner, params)
	if err != nil {
		return nil, 0, err
	}

	practitioners, err := utils.DecodeBundleEntries[fhir_dto.Practitioner](bundle)
	if err != nil {
		return nil, 0, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourcePractitioner)
	}
	return practitioners, bundle.Total, nil
}

func (uc *practitionerUsecase) GetPractitionerByID(ctx context.Context, practitionerID string) (*fhir_dto.Practitioner, error) {
	raw, err := uc.FHIRBackend.ReadResource(ctx, constvars.ResourcePractitioner, practitionerID)
	if err != nil {
		return nil, err
	}

	practitioner := new(fhir_dto.Practitioner)
	if err := json.Unmarshal(raw, practitioner); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourcePractitioner)
	}
	return practitioner, nil
}

func (uc *practitionerUsecase) CreatePractitioner(ctx context.Context, request *requests.CreatePractitioner) (*fhir_dto.Practitioner, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("practitionerUsecase.CreatePractitioner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resource := buildPractitionerResource(request)
	payload, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	raw, err := uc.FHIRBackend.CreateResource(ctx, constvars.ResourcePractitioner, payload)
	if err != nil {
		return nil, err
	}

	created := new(fhir_dto.Practitioner)
	if err := json.Unmarshal(raw, created); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourcePractitioner)
	}
	return created, nil
}

func (uc *practitionerUsecase) UpdatePractitioner(ctx context.Context, request *requests.UpdatePractitioner) (*fhir_dto.Practitioner, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("practitionerUsecase.UpdatePractitioner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, request.ID),
	)

	resource := buildPractitionerResource(&requests.CreatePractitioner{
		FamilyName: request.FamilyName,
		GivenNames: request.GivenNames,
		Email:      request.Email,
		Phone:      request.Phone,
		Specialty:  request.Specialty,
	})
	resource.ID = request.ID
	if request.Active != nil {
		resource.Active = *request.Active
	}

	payload, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	raw, err := uc.FHIRBackend.UpdateResource(ctx, constvars.ResourcePractitioner, request.ID, payload)
	if err != nil {
		return nil, err
	}

	updated := new(fhir_dto.Practitioner)
	if err := json.Unmarshal(raw, updated); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourcePractitioner)
	}
	return updated, nil
}

func (uc *practitionerUsecase) DeletePractitioner(ctx context.Context, practitionerID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("practitionerUsecase.DeletePractitioner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, practitionerID),
	)
	return uc.FHIRBackend.DeleteResource(ctx, constvars.ResourcePractitioner, practitionerID)
}

func buildPractitionerResource(request *requests.CreatePractitioner) *fhir_dto.Practitioner {
	practitioner := &fhir_dto.Practitioner{
		ResourceType: constvars.ResourcePractitioner,
		Active:       true,
		Name: []fhir_dto.HumanName{
			{
				Use:    "official",
				Family: request.FamilyName,
				Given:  request.GivenNames,
			},
		},
	}

	if request.Email != "" {
		practitioner.Telecom = append(practitioner.Telecom, fhir_dto.ContactPoint{
			System: "email", Value: request.Email, Use: "work",
		})
	}
	if request.Phone != "" {
		practitioner.Telecom = append(practitioner.Telecom, fhir_dto.ContactPoint{
			System: "phone", Value: request.Phone, Use: "work",
		})
	}
	if request.Specialty != "" {
		practitioner.Qualification = append(practitioner.Qualification, fhir_dto.Qualification{
			Code: fhir_dto.CodeableConcept{Text: request.Specialty},
		})
	}
	if request.Qualification != "" && request.Qualification != request.Specialty {
		practitioner.Qualification = append(practitioner.Qualification, fhir_dto.Qualification{
			Code: fhir_dto.CodeableConcept{Text: request.Qualification},
		})
	}
	return practitioner
}
