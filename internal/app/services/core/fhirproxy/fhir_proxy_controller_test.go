package fhirproxy

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newProxyTestRouter(t *testing.T) *chi.Mux {
	controller := NewFHIRProxyController(zap.NewNop(), setupProxyUsecase(t))

	router := chi.NewRouter()
	router.Get(fmt.Sprintf("/fhir/{%s}", constvars.URLParamResourceType), controller.Search)
	return router
}

func searchResources(t *testing.T, router *chi.Mux, target string) (int, []json.RawMessage, *responses.Pagination) {
	req := httptest.NewRequest("GET", target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var envelope struct {
		Success    bool                  `json:"success"`
		Data       []json.RawMessage     `json:"data"`
		Pagination *responses.Pagination `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return rr.Code, envelope.Data, envelope.Pagination
}

func TestFHIRProxyController_SearchPagination(t *testing.T) {
	router := newProxyTestRouter(t)

	t.Run("Page Size Caps the Entries", func(t *testing.T) {
		code, data, pagination := searchResources(t, router, "/fhir/Patient?page=1&page_size=1")

		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, data, 1)
		assert.NotNil(t, pagination)
		assert.Equal(t, 3, pagination.Total, "total counts all matches, not the page")
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 1, pagination.PageSize)
		assert.NotEmpty(t, pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})

	t.Run("Pages Do Not Overlap", func(t *testing.T) {
		_, first, _ := searchResources(t, router, "/fhir/Patient?page=1&page_size=1")
		code, second, pagination := searchResources(t, router, "/fhir/Patient?page=2&page_size=1")

		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, second, 1)
		assert.NotEqual(t, resourceID(t, first[0]), resourceID(t, second[0]))
		assert.Equal(t, 2, pagination.Page)
		assert.NotEmpty(t, pagination.PrevURL)
	})

	t.Run("Defaults Apply Without Query Params", func(t *testing.T) {
		code, data, pagination := searchResources(t, router, "/fhir/Patient")

		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, data, 3)
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
	})

	t.Run("Domain Filters Still Forward", func(t *testing.T) {
		code, data, pagination := searchResources(t, router, "/fhir/Patient?name=johnson&page=1&page_size=10")

		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, data, 1)
		assert.Equal(t, 1, pagination.Total)
		assert.Equal(t, "patient-001", resourceID(t, data[0]))
	})
}

func resourceID(t *testing.T, resource json.RawMessage) string {
	var decoded struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(resource, &decoded))
	return decoded.ID
}
