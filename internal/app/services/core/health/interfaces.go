package health

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
)

type HealthUsecase interface {
	Check(ctx context.Context) *responses.Health
}
