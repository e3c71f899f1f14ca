package utils

import (
	"encoding/json"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"
)

// DecodeBundleEntries unmarshals every entry of a searchset bundle into T.
func DecodeBundleEntries[T any](bundle *fhir_dto.Bundle) ([]T, error) {
	resources := make([]T, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var resource T
		if err := json.Unmarshal(entry.Resource, &resource); err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}
	return resources, nil
}

// RawBundleEntries returns the raw resources of a bundle without decoding them.
func RawBundleEntries(bundle *fhir_dto.Bundle) []json.RawMessage {
	resources := make([]json.RawMessage, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		resources = append(resources, entry.Resource)
	}
	return resources
}
