package fhirproxy

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/fhir/mockfhir"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testProxyUsecase FHIRProxyUsecase

func setupProxyUsecase(t *testing.T) FHIRProxyUsecase {
	if testProxyUsecase != nil {
		return testProxyUsecase
	}

	backend, err := mockfhir.NewMockBackend(zap.NewNop())
	assert.NoError(t, err)

	testProxyUsecase = NewFHIRProxyUsecase(backend, zap.NewNop())
	return testProxyUsecase
}

func TestFHIRProxyUsecase_Allowlist(t *testing.T) {
	uc := setupProxyUsecase(t)
	ctx := context.Background()

	t.Run("Allowed Resource Type", func(t *testing.T) {
		bundle, err := uc.Search(ctx, constvars.ResourceCoverage, url.Values{})
		assert.NoError(t, err)
		assert.Equal(t, 2, bundle.Total)
	})

	t.Run("Disallowed Resource Type", func(t *testing.T) {
		_, err := uc.Search(ctx, "AuditEvent", url.Values{})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Allowlist Guards Every Operation", func(t *testing.T) {
		_, readErr := uc.Read(ctx, "AuditEvent", "some-id")
		assert.Error(t, readErr)

		_, createErr := uc.Create(ctx, "AuditEvent", json.RawMessage(`{}`))
		assert.Error(t, createErr)

		_, updateErr := uc.Update(ctx, "AuditEvent", "some-id", json.RawMessage(`{}`))
		assert.Error(t, updateErr)

		assert.Error(t, uc.Delete(ctx, "AuditEvent", "some-id"))
	})
}

func TestFHIRProxyUsecase_Update(t *testing.T) {
	uc := setupProxyUsecase(t)
	ctx := context.Background()

	t.Run("Payload ID Must Match URL", func(t *testing.T) {
		payload := json.RawMessage(`{"resourceType":"Coverage","id":"coverage-002","status":"active"}`)

		_, err := uc.Update(ctx, constvars.ResourceCoverage, "coverage-001", payload)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Payload Without ID Passes Through", func(t *testing.T) {
		payload := json.RawMessage(`{"resourceType":"Coverage","status":"cancelled"}`)

		raw, err := uc.Update(ctx, constvars.ResourceCoverage, "coverage-001", payload)
		assert.NoError(t, err)

		var updated map[string]interface{}
		assert.NoError(t, json.Unmarshal(raw, &updated))
		assert.Equal(t, "coverage-001", updated["id"])
		assert.Equal(t, "cancelled", updated["status"])
	})
}

func TestFHIRProxyUsecase_CreateAndRead(t *testing.T) {
	uc := setupProxyUsecase(t)
	ctx := context.Background()

	raw, err := uc.Create(ctx, constvars.ResourceCommunication, json.RawMessage(`{"status":"completed"}`))
	assert.NoError(t, err)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &created))
	id, _ := created["id"].(string)
	assert.NotEmpty(t, id)

	fetched, err := uc.Read(ctx, constvars.ResourceCommunication, id)
	assert.NoError(t, err)

	var resource map[string]interface{}
	assert.NoError(t, json.Unmarshal(fetched, &resource))
	assert.Equal(t, "completed", resource["status"])
}
