package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeRedisRepository mirrors the real repository's behavior: values are
// marshaled on Set and returned as raw JSON strings on Get.
type fakeRedisRepository struct {
	mu    sync.Mutex
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}

func (f *fakeRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	return 0, nil
}

func (f *fakeRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return 0, nil
}

func (f *fakeRedisRepository) Ping(ctx context.Context) error {
	return nil
}

func testSessionConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{
			Secret:                 "test-jwt-secret",
			AccessTokenExpInMinute: 60,
			RefreshTokenExpInHour:  168,
			SessionTTLInHour:       168,
		},
	}
}

func testSession() *models.Session {
	return &models.Session{
		UserID:           "user-001",
		Email:            "admin@telehealth.example.com",
		Name:             "Alex Morgan",
		Role:             constvars.TelehealthRoleAdmin,
		ProfileReference: "Practitioner/practitioner-001",
	}
}

func TestSessionService_CreateAndGetSession(t *testing.T) {
	repo := newFakeRedisRepository()
	internalConfig := testSessionConfig()
	service := NewSessionService(repo, internalConfig, zap.NewNop())
	ctx := context.Background()

	session := testSession()
	accessToken, refreshToken, err := service.CreateSession(ctx, session)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEmpty(t, session.SessionID, "a session id is assigned")

	// The access token resolves back to the stored session.
	sessionID, err := utils.ParseSessionJWT(accessToken, internalConfig.JWT.Secret)
	assert.NoError(t, err)
	assert.Equal(t, session.SessionID, sessionID)

	stored, err := service.GetSession(ctx, sessionID)
	assert.NoError(t, err)
	assert.Equal(t, "user-001", stored.UserID)
	assert.Equal(t, constvars.TelehealthRoleAdmin, stored.Role)
	assert.True(t, stored.ExpiresAt.After(time.Now()))
}

func TestSessionService_GetUnknownSession(t *testing.T) {
	service := NewSessionService(newFakeRedisRepository(), testSessionConfig(), zap.NewNop())

	_, err := service.GetSession(context.Background(), "no-such-session")
	assert.Error(t, err)
}

func TestSessionService_RotateRefreshToken(t *testing.T) {
	repo := newFakeRedisRepository()
	service := NewSessionService(repo, testSessionConfig(), zap.NewNop())
	ctx := context.Background()

	session := testSession()
	_, refreshToken, err := service.CreateSession(ctx, session)
	assert.NoError(t, err)

	rotated, newAccess, newRefresh, err := service.RotateRefreshToken(ctx, refreshToken)
	assert.NoError(t, err)
	assert.Equal(t, session.SessionID, rotated.SessionID)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.NotEqual(t, refreshToken, newRefresh, "rotation issues a new refresh token")

	// The old refresh token is single-use.
	_, _, _, err = service.RotateRefreshToken(ctx, refreshToken)
	assert.Error(t, err)

	// The new one still works.
	_, _, _, err = service.RotateRefreshToken(ctx, newRefresh)
	assert.NoError(t, err)
}

func TestSessionService_DestroySession(t *testing.T) {
	repo := newFakeRedisRepository()
	service := NewSessionService(repo, testSessionConfig(), zap.NewNop())
	ctx := context.Background()

	session := testSession()
	_, _, err := service.CreateSession(ctx, session)
	assert.NoError(t, err)

	assert.NoError(t, service.DestroySession(ctx, session.SessionID))

	_, err = service.GetSession(ctx, session.SessionID)
	assert.Error(t, err)

	_, ok := repo.store[fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID)]
	assert.False(t, ok, "session key removed from the store")
}
