package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/fhir/mockfhir"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePinger struct {
	redisErr error
	userErr  error
}

func (f *fakePinger) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakePinger) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *fakePinger) Delete(ctx context.Context, key string) error       { return nil }
func (f *fakePinger) Increment(ctx context.Context, key string) (int64, error) {
	return 0, nil
}
func (f *fakePinger) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return 0, nil
}
func (f *fakePinger) Ping(ctx context.Context) error { return f.redisErr }

func (f *fakePinger) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	return "", nil
}
func (f *fakePinger) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}
func (f *fakePinger) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return nil, nil
}
func (f *fakePinger) FindByProfileReference(ctx context.Context, profileReference string) (*models.User, error) {
	return nil, nil
}
func (f *fakePinger) UpdateUser(ctx context.Context, userModel *models.User) error { return nil }

// userPinger adapts the shared fake so the user repository ping can fail
// independently of the redis one.
type userPinger struct{ *fakePinger }

func (u userPinger) Ping(ctx context.Context) error { return u.userErr }

func TestHealthUsecase_Check(t *testing.T) {
	backend, err := mockfhir.NewMockBackend(zap.NewNop())
	assert.NoError(t, err)

	deps := &fakePinger{}
	uc := NewHealthUsecase("v1.0", deps, userPinger{deps}, backend, zap.NewNop())

	t.Run("All Dependencies Up", func(t *testing.T) {
		health := uc.Check(context.Background())

		assert.Equal(t, responses.HealthStatusOK, health.Status)
		assert.Equal(t, "v1.0", health.Version)
		assert.Equal(t, responses.HealthCheckStatusUp, health.Checks["redis"].Status)
		assert.Equal(t, responses.HealthCheckStatusUp, health.Checks["database"].Status)
		assert.Equal(t, responses.HealthCheckStatusMock, health.Checks["fhir"].Status,
			"fixture backend reports as mock, not up")
		assert.False(t, health.Timestamp.IsZero())
	})

	t.Run("Down Dependency Degrades the Status", func(t *testing.T) {
		deps.redisErr = errors.New("connection refused")
		defer func() { deps.redisErr = nil }()

		health := uc.Check(context.Background())

		assert.Equal(t, responses.HealthStatusDegraded, health.Status)
		assert.Equal(t, responses.HealthCheckStatusDown, health.Checks["redis"].Status)
		assert.Contains(t, health.Checks["redis"].Detail, "connection refused")
	})
}
