package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCatalogUsecase_BuiltinServices(t *testing.T) {
	uc := NewCatalogUsecase(nil, "", zap.NewNop())

	services, err := uc.GetServices(context.Background())
	assert.NoError(t, err)
	assert.Len(t, services, len(builtinServices), "nil database serves the builtin catalog")

	byID := make(map[string]bool)
	for _, service := range services {
		byID[service.ID] = true
		assert.NotEmpty(t, service.Name)
		assert.NotEmpty(t, service.Currency)
		assert.True(t, service.Active)
	}
	assert.True(t, byID["svc-video-consult"])
	assert.True(t, byID["svc-follow-up"])
}
