package medplum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testInternalConfig(baseUrl string) *config.InternalConfig {
	return &config.InternalConfig{
		Medplum: config.Medplum{
			BaseUrl:          baseUrl,
			ClientID:         "test-client",
			ClientSecret:     "test-secret",
			TimeoutInSeconds: 5,
		},
	}
}

func TestTokenManager_GetToken(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)

		assert.Equal(t, "/oauth2/token", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "test-client", r.Form.Get("client_id"))
		assert.Equal(t, "test-secret", r.Form.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-abc","expires_in":3600}`))
	}))
	defer server.Close()

	tm := NewTokenManager(testInternalConfig(server.URL), zap.NewNop())

	token, err := tm.GetToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "token-abc", token)

	// Second call is served from the cache.
	token, err = tm.GetToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	// Invalidate forces a refetch.
	tm.Invalidate()
	_, err = tm.GetToken(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestTokenManager_UpstreamRejectsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer server.Close()

	tm := NewTokenManager(testInternalConfig(server.URL), zap.NewNop())

	_, err := tm.GetToken(context.Background())
	assert.Error(t, err)
}

func TestTokenManager_EmptyAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"","expires_in":3600}`))
	}))
	defer server.Close()

	tm := NewTokenManager(testInternalConfig(server.URL), zap.NewNop())

	_, err := tm.GetToken(context.Background())
	assert.Error(t, err)
}
