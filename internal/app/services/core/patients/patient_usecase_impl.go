package patients

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
	patientUsecaseInstance PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	FHIRBackend contracts.FHIRBackend
	Log         *zap.Logger
}

func NewPatientUsecase(fhirBackend contracts.FHIRBackend, logger *zap.Logger) PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			FHIRBackend: fhirBackend,
			Log:         logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatient) ([]fhir_dto.Patient, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	if request.Name != "" {
		params.Set(constvars.URLQueryParamName, request.Name)
	}
	if request.Identifier != "" {
		params.Set(constvars.URLQueryParamIdentifier, request.Identifier)
	}
	if request.Gender != "" {
		params.Set(constvars.URLQueryParamGender, request.Gender)
	}
	if request.Birthdate != "" {
		params.Set(constvars.URLQueryParamBirthdate, request.Birthdate)
	}
	params.Set(constvars.FhirSearchParamCount, strconv.Itoa(request.Pagination.PageSize))
	params.Set(constvars.FhirSearchParamOffset, strconv.Itoa(request.Pagination.Offset()))

	bundle, err := uc.FHIRBackend.SearchResources(ctx, constvars.ResourcePatient, params)
	if err != nil {
		return nil, 0, err
	}

	patients, err := utils.DecodeBundleEntries[fhir_dto.Patient](bundle)
	if err != nil {
		return nil, 0, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourcePatient)
	}
	return patients, bundle.Total, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	raw, err := uc.FHIRBackend.ReadResource(ctx, constvars.ResourcePatient, patientID)
	if err != nil {
		return nil, err
	}

	patient := new(fhir_dto.Patient)
	if err := json.Unmarshal(raw, patient); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourcePatient)
	}
	return patient, nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resource := buildPatientResource(request)
	payload, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	raw, err := uc.FHIRBackend.CreateResource(ctx, constvars.ResourcePatient, payload)
	if err != nil {
		return nil, err
	}

	created := new(fhir_dto.Patient)
	if err := json.Unmarshal(raw, created); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourcePatient)
	}
	return created, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, request.ID),
	)

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	resource := buildPatientResource(&requests.CreatePatient{
		FamilyName:   request.FamilyName,
		GivenNames:   request.GivenNames,
		Gender:       request.Gender,
		BirthDate:    request.BirthDate,
		Email:        request.Email,
		Phone:        request.Phone,
		AddressLines: request.AddressLines,
		City:         request.City,
		State:        request.State,
		PostalCode:   request.PostalCode,
	})
	resource.ID = request.ID
	resource.Active = active

	payload, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	raw, err := uc.FHIRBackend.UpdateResource(ctx, constvars.ResourcePatient, request.ID, payload)
	if err != nil {
		return nil, err
	}

	updated := new(fhir_dto.Patient)
	if err := json.Unmarshal(raw, updated); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourcePatient)
	}
	return updated, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, patientID),
	)
	return uc.FHIRBackend.DeleteResource(ctx, constvars.ResourcePatient, patientID)
}

func buildPatientResource(request *requests.CreatePatient) *fhir_dto.Patient {
	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Active:       true,
		Name: []fhir_dto.HumanName{
			{
				Use:    "official",
				Family: request.FamilyName,
				Given:  request.GivenNames,
			},
		},
		Gender:    request.Gender,
		BirthDate: request.BirthDate,
	}

	if request.Identifier != "" {
		patient.Identifier = []fhir_dto.Identifier{
			{System: "urn:telehealth:mrn", Value: request.Identifier},
		}
	}
	if request.Email != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: "email", Value: request.Email, Use: "home",
		})
	}
	if request.Phone != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{
			System: "phone", Value: request.Phone, Use: "mobile",
		})
	}
	if len(request.AddressLines) > 0 || request.City != "" || request.PostalCode != "" {
		patient.Address = []fhir_dto.Address{
			{
				Use:        "home",
				Line:       request.AddressLines,
				City:       request.City,
				State:      request.State,
				PostalCode: request.PostalCode,
			},
		}
	}
	return patient
}
