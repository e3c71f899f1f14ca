package fhirproxy

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

var (
	fhirProxyUsecaseInstance FHIRProxyUsecase
	onceFHIRProxyUsecase     sync.Once
)

type fhirProxyUsecase struct {
	FHIRBackend contracts.FHIRBackend
	Log         *zap.Logger
}

func NewFHIRProxyUsecase(fhirBackend contracts.FHIRBackend, logger *zap.Logger) FHIRProxyUsecase {
	onceFHIRProxyUsecase.Do(func() {
		fhirProxyUsecaseInstance = &fhirProxyUsecase{
			FHIRBackend: fhirBackend,
			Log:         logger,
		}
	})
	return fhirProxyUsecaseInstance
}

func ensureAllowedResourceType(resourceType string) error {
	if !constvars.AllowedFhirResources[resourceType] {
		return exceptions.ErrFHIRResourceTypeNotAllowed(nil, resourceType)
	}
	return nil
}

func (uc *fhirProxyUsecase) Search(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
	if err := ensureAllowedResourceType(resourceType); err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("fhirProxyUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
	)
	return uc.FHIRBackend.SearchResources(ctx, resourceType, params)
}

func (uc *fhirProxyUsecase) Read(ctx context.Context, resourceType, resourceID string) (json.RawMessage, error) {
	if err := ensureAllowedResourceType(resourceType); err != nil {
		return nil, err
	}
	return uc.FHIRBackend.ReadResource(ctx, resourceType, resourceID)
}

func (uc *fhirProxyUsecase) Create(ctx context.Context, resourceType string, payload json.RawMessage) (json.RawMessage, error) {
	if err := ensureAllowedResourceType(resourceType); err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("fhirProxyUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
	)
	return uc.FHIRBackend.CreateResource(ctx, resourceType, payload)
}

func (uc *fhirProxyUsecase) Update(ctx context.Context, resourceType, resourceID string, payload json.RawMessage) (json.RawMessage, error) {
	if err := ensureAllowedResourceType(resourceType); err != nil {
		return nil, err
	}

	// When the payload carries an id it must match the URL before anything is
	// forwarded upstream.
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if probe.ID != "" && probe.ID != resourceID {
		return nil, exceptions.ErrFHIRResourceIDMismatch(nil)
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("fhirProxyUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)
	return uc.FHIRBackend.UpdateResource(ctx, resourceType, resourceID, payload)
}

func (uc *fhirProxyUsecase) Delete(ctx context.Context, resourceType, resourceID string) error {
	if err := ensureAllowedResourceType(resourceType); err != nil {
		return err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("fhirProxyUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, resourceID),
	)
	return uc.FHIRBackend.DeleteResource(ctx, resourceType, resourceID)
}
