package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) (string, string, error) {
	return "", "", nil
}

func (f *fakeSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func (f *fakeSessionService) DestroySession(ctx context.Context, sessionID string) error {
	return nil
}

func (f *fakeSessionService) RotateRefreshToken(ctx context.Context, refreshToken string) (*models.Session, string, string, error) {
	return nil, "", "", exceptions.ErrRefreshTokenUnknown(nil)
}

func sessionProbeHandler(t *testing.T, captured **models.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		assert.True(t, ok, "session should be on the request context")
		*captured = session
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MockMode(t *testing.T) {
	mw := NewMiddlewares(zap.NewNop(), &fakeSessionService{}, &config.InternalConfig{
		Medplum: config.Medplum{UseMock: true},
	})

	t.Run("Missing Authorization Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/fhir/patients", nil)
		rr := httptest.NewRecorder()

		mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token Too Short", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/fhir/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+"short")
		rr := httptest.NewRecorder()

		mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Any Long Token Signs In the Demo Admin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/fhir/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+"any-token-longer-than-ten-chars")
		rr := httptest.NewRecorder()

		var captured *models.Session
		mw.Authenticate(sessionProbeHandler(t, &captured)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "mock-user-admin", captured.UserID)
		assert.Equal(t, constvars.TelehealthRoleAdmin, captured.Role)
	})
}

func TestAuthenticate_LiveMode(t *testing.T) {
	internalConfig := &config.InternalConfig{
		Medplum: config.Medplum{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		},
		JWT: config.JWT{
			Secret:                 "test-secret",
			AccessTokenExpInMinute: 60,
		},
	}
	sessionService := &fakeSessionService{
		sessions: map[string]*models.Session{
			"session-live": {
				SessionID: "session-live",
				UserID:    "user-001",
				Email:     "provider@telehealth.example.com",
				Role:      constvars.TelehealthRoleProvider,
			},
		},
	}
	mw := NewMiddlewares(zap.NewNop(), sessionService, internalConfig)

	t.Run("Valid Token Resolves the Session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-live", internalConfig.JWT.Secret, 60)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/fhir/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()

		var captured *models.Session
		mw.Authenticate(sessionProbeHandler(t, &captured)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-001", captured.UserID)
	})

	t.Run("Token for a Destroyed Session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-gone", internalConfig.JWT.Secret, 60)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/fhir/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()

		mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token Signed With Another Secret", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-live", "wrong-secret", 60)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/fhir/patients", nil)
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		rr := httptest.NewRecorder()

		mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthRateLimit(t *testing.T) {
	mw := NewMiddlewares(zap.NewNop(), &fakeSessionService{}, &config.InternalConfig{
		App: config.App{
			AuthMaxAttempts:           3,
			AuthBlockDurationInMinute: 15,
		},
	})

	handler := mw.AuthRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// The limiter starts with a full burst; the attempts beyond it are
	// rejected until the window refills.
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:51000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, "attempt %d within the burst", i+1)
	}

	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.7:51001"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	// A different client is unaffected.
	req = httptest.NewRequest("POST", "/api/auth/login", nil)
	req.RemoteAddr = "198.51.100.9:40000"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
