package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationRequest(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/fhir/patients", nil)

		pagination := BuildPaginationRequest(req)

		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
		assert.Equal(t, 0, pagination.Offset())
	})

	t.Run("Explicit Values", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/fhir/patients?page=3&page_size=25", nil)

		pagination := BuildPaginationRequest(req)

		assert.Equal(t, 3, pagination.Page)
		assert.Equal(t, 25, pagination.PageSize)
		assert.Equal(t, 50, pagination.Offset())
	})

	t.Run("Invalid Values Fall Back to Defaults", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/fhir/patients?page=zero&page_size=-5", nil)

		pagination := BuildPaginationRequest(req)

		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
	})
}

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("Middle Page Has Both Links", func(t *testing.T) {
		pagination := BuildPaginationResponse(100, 2, 10, "/api/fhir/patients")

		assert.Equal(t, 100, pagination.Total)
		assert.Equal(t, "/api/fhir/patients?page=3&page_size=10", pagination.NextURL)
		assert.Equal(t, "/api/fhir/patients?page=1&page_size=10", pagination.PrevURL)
	})

	t.Run("First Page Has No Prev", func(t *testing.T) {
		pagination := BuildPaginationResponse(100, 1, 10, "/api/fhir/patients")

		assert.NotEmpty(t, pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})

	t.Run("Last Page Has No Next", func(t *testing.T) {
		pagination := BuildPaginationResponse(100, 10, 10, "/api/fhir/patients")

		assert.Empty(t, pagination.NextURL)
		assert.NotEmpty(t, pagination.PrevURL)
	})

	t.Run("Single Page", func(t *testing.T) {
		pagination := BuildPaginationResponse(5, 1, 10, "/api/fhir/patients")

		assert.Empty(t, pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})
}
