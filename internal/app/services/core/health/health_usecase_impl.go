package health

import (
	"context"
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

const (
	checkRedis    = "redis"
	checkDatabase = "database"
	checkFHIR     = "fhir"
)

var (
	healthUsecaseInstance HealthUsecase
	onceHealthUsecase     sync.Once
)

type healthUsecase struct {
	Version         string
	RedisRepository contracts.RedisRepository
	UserRepository  contracts.UserRepository
	FHIRBackend     contracts.FHIRBackend
	Log             *zap.Logger
}

func NewHealthUsecase(
	version string,
	redisRepository contracts.RedisRepository,
	userRepository contracts.UserRepository,
	fhirBackend contracts.FHIRBackend,
	logger *zap.Logger,
) HealthUsecase {
	onceHealthUsecase.Do(func() {
		healthUsecaseInstance = &healthUsecase{
			Version:         version,
			RedisRepository: redisRepository,
			UserRepository:  userRepository,
			FHIRBackend:     fhirBackend,
			Log:             logger,
		}
	})
	return healthUsecaseInstance
}

// Check pings every dependency; a failing check degrades the overall status
// but never fails the endpoint itself.
func (uc *healthUsecase) Check(ctx context.Context) *responses.Health {
	checks := map[string]responses.HealthCheck{
		checkRedis:    uc.ping(ctx, uc.RedisRepository.Ping),
		checkDatabase: uc.ping(ctx, uc.UserRepository.Ping),
	}

	if uc.FHIRBackend.Name() == "mock" {
		checks[checkFHIR] = responses.HealthCheck{Status: responses.HealthCheckStatusMock}
	} else {
		checks[checkFHIR] = uc.ping(ctx, uc.FHIRBackend.Ping)
	}

	status := responses.HealthStatusOK
	for name, check := range checks {
		if check.Status == responses.HealthCheckStatusDown {
			status = responses.HealthStatusDegraded
			uc.Log.Warn("healthUsecase dependency is down",
				zap.String("check", name),
				zap.String("detail", check.Detail),
			)
		}
	}

	return &responses.Health{
		Status:    status,
		Version:   uc.Version,
		Checks:    checks,
		Timestamp: time.Now().UTC(),
	}
}

func (uc *healthUsecase) ping(ctx context.Context, pingFn func(context.Context) error) responses.HealthCheck {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := pingFn(pingCtx); err != nil {
		return responses.HealthCheck{Status: responses.HealthCheckStatusDown, Detail: err.Error()}
	}
	return responses.HealthCheck{Status: responses.HealthCheckStatusUp}
}
