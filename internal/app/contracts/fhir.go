package contracts

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
)

// FHIRBackend is the FHIR datastore behind the API. The live implementation
// proxies to Medplum, the mock one serves seeded fixtures for local
// development and demos.
type FHIRBackend interface {
	// Name identifies the backend in health checks ("medplum" or "mock").
	Name() string
	Ping(ctx context.Context) error

	SearchResources(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error)
	ReadResource(ctx context.Context, resourceType, resourceID string) (json.RawMessage, error)
	CreateResource(ctx context.Context, resourceType string, payload json.RawMessage) (json.RawMessage, error)
	UpdateResource(ctx context.Context, resourceType, resourceID string, payload json.RawMessage) (json.RawMessage, error)
	DeleteResource(ctx context.Context, resourceType, resourceID string) error
}
