package mockfhir

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestBackend(t *testing.T) *mockBackend {
	backend, err := NewMockBackend(zap.NewNop())
	assert.NoError(t, err)
	return backend.(*mockBackend)
}

func TestMockBackend_Seed(t *testing.T) {
	backend := newTestBackend(t)

	bundle, err := backend.SearchResources(context.Background(), constvars.ResourcePatient, url.Values{})
	assert.NoError(t, err)
	assert.Equal(t, 3, bundle.Total, "fixtures seed three patients")
	assert.Len(t, bundle.Entry, 3)
}

func TestMockBackend_ReadResource(t *testing.T) {
	backend := newTestBackend(t)

	t.Run("Existing Resource", func(t *testing.T) {
		raw, err := backend.ReadResource(context.Background(), constvars.ResourcePatient, "patient-001")
		assert.NoError(t, err)

		var resource map[string]interface{}
		assert.NoError(t, json.Unmarshal(raw, &resource))
		assert.Equal(t, "Patient", resource["resourceType"])
		assert.Equal(t, "patient-001", resource["id"])
	})

	t.Run("Unknown Resource", func(t *testing.T) {
		_, err := backend.ReadResource(context.Background(), constvars.ResourcePatient, "no-such-patient")
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestMockBackend_CreateUpdateDelete(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	payload := json.RawMessage(`{"name":[{"family":"Nguyen","given":["Thao"]}],"gender":"female"}`)
	raw, err := backend.CreateResource(ctx, constvars.ResourcePatient, payload)
	assert.NoError(t, err)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &created))
	id, _ := created["id"].(string)
	assert.NotEmpty(t, id, "create assigns an id")
	assert.Equal(t, "Patient", created["resourceType"])

	meta, _ := created["meta"].(map[string]interface{})
	assert.Equal(t, "1", meta["versionId"])

	updatePayload := json.RawMessage(`{"name":[{"family":"Nguyen","given":["Thao"]}],"gender":"female","active":true}`)
	raw, err = backend.UpdateResource(ctx, constvars.ResourcePatient, id, updatePayload)
	assert.NoError(t, err)

	var updated map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, id, updated["id"], "update keeps the resource id")
	assert.Equal(t, true, updated["active"])

	meta, _ = updated["meta"].(map[string]interface{})
	assert.Equal(t, "2", meta["versionId"], "update bumps the version")

	assert.NoError(t, backend.DeleteResource(ctx, constvars.ResourcePatient, id))

	_, err = backend.ReadResource(ctx, constvars.ResourcePatient, id)
	assert.Error(t, err, "deleted resource is gone")
}

func TestMockBackend_UpdateUnknownResource(t *testing.T) {
	backend := newTestBackend(t)

	_, err := backend.UpdateResource(context.Background(), constvars.ResourcePatient, "no-such-patient", json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestMockBackend_SearchFilters(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	t.Run("Filter by Name", func(t *testing.T) {
		params := url.Values{}
		params.Set("name", "johnson")

		bundle, err := backend.SearchResources(ctx, constvars.ResourcePatient, params)
		assert.NoError(t, err)
		assert.Equal(t, 1, bundle.Total)

		var patient map[string]interface{}
		assert.NoError(t, json.Unmarshal(bundle.Entry[0].Resource, &patient))
		assert.Equal(t, "patient-001", patient["id"])
	})

	t.Run("Filter by Gender", func(t *testing.T) {
		params := url.Values{}
		params.Set("gender", "female")

		bundle, err := backend.SearchResources(ctx, constvars.ResourcePatient, params)
		assert.NoError(t, err)
		assert.Equal(t, 2, bundle.Total)
	})

	t.Run("Filter by Active", func(t *testing.T) {
		params := url.Values{}
		params.Set("active", "false")

		bundle, err := backend.SearchResources(ctx, constvars.ResourcePatient, params)
		assert.NoError(t, err)
		assert.Equal(t, 1, bundle.Total)
	})

	t.Run("No Match", func(t *testing.T) {
		params := url.Values{}
		params.Set("name", "nobody-by-this-name")

		bundle, err := backend.SearchResources(ctx, constvars.ResourcePatient, params)
		assert.NoError(t, err)
		assert.Equal(t, 0, bundle.Total)
		assert.Empty(t, bundle.Entry)
	})

	t.Run("Unknown Parameter Is Ignored", func(t *testing.T) {
		params := url.Values{}
		params.Set("some-exotic-param", "whatever")

		bundle, err := backend.SearchResources(ctx, constvars.ResourcePatient, params)
		assert.NoError(t, err)
		assert.Equal(t, 3, bundle.Total)
	})
}

func TestMockBackend_SearchPaging(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	params := url.Values{}
	params.Set(constvars.FhirSearchParamCount, "2")
	params.Set(constvars.FhirSearchParamOffset, "0")

	first, err := backend.SearchResources(ctx, constvars.ResourcePatient, params)
	assert.NoError(t, err)
	assert.Equal(t, 3, first.Total, "total reflects all matches, not the page")
	assert.Len(t, first.Entry, 2)

	params.Set(constvars.FhirSearchParamOffset, "2")
	second, err := backend.SearchResources(ctx, constvars.ResourcePatient, params)
	assert.NoError(t, err)
	assert.Len(t, second.Entry, 1)

	// Deterministic ordering: pages never overlap.
	var firstIDs []string
	for _, entry := range first.Entry {
		var resource map[string]interface{}
		assert.NoError(t, json.Unmarshal(entry.Resource, &resource))
		firstIDs = append(firstIDs, resource["id"].(string))
	}
	var lastPage map[string]interface{}
	assert.NoError(t, json.Unmarshal(second.Entry[0].Resource, &lastPage))
	assert.NotContains(t, firstIDs, lastPage["id"])

	params.Set(constvars.FhirSearchParamOffset, "50")
	beyond, err := backend.SearchResources(ctx, constvars.ResourcePatient, params)
	assert.NoError(t, err)
	assert.Empty(t, beyond.Entry, "offset beyond the result set yields an empty page")
}
