package catalog

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
)

type CatalogUsecase interface {
	GetServices(ctx context.Context) ([]responses.CatalogService, error)
}
