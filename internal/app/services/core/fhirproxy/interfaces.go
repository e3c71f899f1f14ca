package fhirproxy

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
)

// FHIRProxyUsecase is the generic passthrough behind /fhir/{resource_type}.
// It enforces the resource-type allowlist and otherwise forwards raw payloads
// untouched so the dashboard can reach resource types without a typed endpoint.
type FHIRProxyUsecase interface {
	Search(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error)
	Read(ctx context.Context, resourceType, resourceID string) (json.RawMessage, error)
	Create(ctx context.Context, resourceType string, payload json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, resourceType, resourceID string, payload json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, resourceType, resourceID string) error
}
