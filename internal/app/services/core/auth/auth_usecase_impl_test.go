package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/users"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeSessionService hands out predictable tokens and remembers what it did.
type fakeSessionService struct {
	sessions      map[string]*models.Session
	refreshTokens map[string]string
	counter       int
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{
		sessions:      make(map[string]*models.Session),
		refreshTokens: make(map[string]string),
	}
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) (string, string, error) {
	f.counter++
	session.SessionID = fmt.Sprintf("session-%d", f.counter)
	f.sessions[session.SessionID] = session

	refreshToken := fmt.Sprintf("refresh-%d", f.counter)
	f.refreshTokens[refreshToken] = session.SessionID
	return fmt.Sprintf("access-%d", f.counter), refreshToken, nil
}

func (f *fakeSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func (f *fakeSessionService) DestroySession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeSessionService) RotateRefreshToken(ctx context.Context, refreshToken string) (*models.Session, string, string, error) {
	sessionID, ok := f.refreshTokens[refreshToken]
	if !ok {
		return nil, "", "", exceptions.ErrRefreshTokenUnknown(nil)
	}
	delete(f.refreshTokens, refreshToken)

	session := f.sessions[sessionID]
	f.counter++
	newRefresh := fmt.Sprintf("refresh-%d", f.counter)
	f.refreshTokens[newRefresh] = sessionID
	return session, fmt.Sprintf("access-%d", f.counter), newRefresh, nil
}

// The usecase is a package singleton, so every test shares one instance wired
// against the mock user directory.
var (
	testAuthUsecase AuthUsecase
	testSessions    *fakeSessionService
)

func setupAuthUsecase(t *testing.T) AuthUsecase {
	if testAuthUsecase != nil {
		return testAuthUsecase
	}

	userRepository, err := users.NewUserMockRepository(zap.NewNop())
	assert.NoError(t, err)

	testSessions = newFakeSessionService()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:                 "test-secret",
			AccessTokenExpInMinute: 60,
		},
		Medplum: config.Medplum{UseMock: true},
	}

	testAuthUsecase = NewAuthUsecase(userRepository, testSessions, internalConfig, zap.NewNop())
	return testAuthUsecase
}

func TestAuthUsecase_Login(t *testing.T) {
	uc := setupAuthUsecase(t)
	ctx := context.Background()

	t.Run("Valid Credentials", func(t *testing.T) {
		response, err := uc.Login(ctx, &requests.Login{
			Email:    users.MockUserEmailAdmin,
			Password: "telehealth-demo",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.NotEmpty(t, response.RefreshToken)
		assert.Equal(t, 3600, response.ExpiresIn)
		assert.Equal(t, users.MockUserEmailAdmin, response.User.Email)
		assert.Equal(t, constvars.TelehealthRoleAdmin, response.User.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := uc.Login(ctx, &requests.Login{
			Email:    users.MockUserEmailAdmin,
			Password: "not-the-password",
		})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("Unknown Email Gives the Same Answer", func(t *testing.T) {
		_, wrongPassword := uc.Login(ctx, &requests.Login{
			Email:    users.MockUserEmailAdmin,
			Password: "not-the-password",
		})
		_, unknownEmail := uc.Login(ctx, &requests.Login{
			Email:    "nobody@telehealth.example.com",
			Password: "telehealth-demo",
		})

		wrongErr, ok := wrongPassword.(*exceptions.CustomError)
		assert.True(t, ok)
		unknownErr, ok := unknownEmail.(*exceptions.CustomError)
		assert.True(t, ok)

		assert.Equal(t, wrongErr.StatusCode, unknownErr.StatusCode)
		assert.Equal(t, wrongErr.ClientMessage, unknownErr.ClientMessage,
			"client cannot distinguish a wrong password from an unknown email")
	})
}

func TestAuthUsecase_OAuthCallbackMockMode(t *testing.T) {
	uc := setupAuthUsecase(t)

	response, err := uc.OAuthCallback(context.Background(), &requests.OAuthCallback{
		Code:  "mock-code",
		State: "mock-state",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, users.MockUserEmailAdmin, response.User.Email,
		"mock mode signs in the demo administrator")
}

func TestAuthUsecase_RefreshToken(t *testing.T) {
	uc := setupAuthUsecase(t)
	ctx := context.Background()

	login, err := uc.Login(ctx, &requests.Login{
		Email:    users.MockUserEmailProvider,
		Password: "telehealth-demo",
	})
	assert.NoError(t, err)

	refreshed, err := uc.RefreshToken(ctx, &requests.RefreshToken{RefreshToken: login.RefreshToken})
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	_, err = uc.RefreshToken(ctx, &requests.RefreshToken{RefreshToken: login.RefreshToken})
	assert.Error(t, err, "a rotated refresh token cannot be used again")
}

func TestAuthUsecase_Logout(t *testing.T) {
	uc := setupAuthUsecase(t)
	ctx := context.Background()

	login, err := uc.Login(ctx, &requests.Login{
		Email:    users.MockUserEmailStaff,
		Password: "telehealth-demo",
	})
	assert.NoError(t, err)
	assert.NotNil(t, login)

	var sessionID string
	for id := range testSessions.sessions {
		sessionID = id
	}
	assert.NoError(t, uc.Logout(ctx, sessionID))
	_, err = testSessions.GetSession(ctx, sessionID)
	assert.Error(t, err)
}

func TestAuthUsecase_GetProfile(t *testing.T) {
	uc := setupAuthUsecase(t)
	ctx := context.Background()

	t.Run("Known User Answers From the Directory", func(t *testing.T) {
		profile, err := uc.GetProfile(ctx, &models.Session{
			UserID: "mock-user-admin",
			Email:  "stale@example.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, users.MockUserEmailAdmin, profile.Email, "directory record wins over the session snapshot")
		assert.Equal(t, "Alex Morgan", profile.Name)
	})

	t.Run("Unknown User Falls Back to the Session Snapshot", func(t *testing.T) {
		profile, err := uc.GetProfile(ctx, &models.Session{
			UserID: "user-removed-from-directory",
			Email:  "ghost@telehealth.example.com",
			Name:   "Ghost",
			Role:   constvars.TelehealthRoleStaff,
		})
		assert.NoError(t, err)
		assert.Equal(t, "ghost@telehealth.example.com", profile.Email)
		assert.Equal(t, constvars.TelehealthRoleStaff, profile.Role)
	})
}
