package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// CreateSession stores the session in Redis, issues an HS256 access token
// carrying the session_id claim plus an opaque refresh token pointing at the
// session.
func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, string, error) {
	if session.SessionID == "" {
		session.SessionID = uuid.New().String()
	}
	now := time.Now()
	session.CreatedAt = now
	session.ExpiresAt = now.Add(time.Duration(s.InternalConfig.JWT.SessionTTLInHour) * time.Hour)

	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID)
	sessionTTL := time.Duration(s.InternalConfig.JWT.SessionTTLInHour) * time.Hour
	err := s.RedisRepository.Set(ctx, sessionKey, session, sessionTTL)
	if err != nil {
		return "", "", err
	}

	accessToken, err := utils.GenerateSessionJWT(session.SessionID, s.InternalConfig.JWT.Secret, s.InternalConfig.JWT.AccessTokenExpInMinute)
	if err != nil {
		return "", "", err
	}

	refreshToken := uuid.New().String()
	refreshKey := fmt.Sprintf(constvars.RedisRefreshTokenKeyFormat, refreshToken)
	refreshTTL := time.Duration(s.InternalConfig.JWT.RefreshTokenExpInHour) * time.Hour
	err = s.RedisRepository.Set(ctx, refreshKey, session.SessionID, refreshTTL)
	if err != nil {
		return "", "", err
	}

	s.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return accessToken, refreshToken, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	data, err := s.RedisRepository.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionService) DestroySession(ctx context.Context, sessionID string) error {
	sessionKey := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	return s.RedisRepository.Delete(ctx, sessionKey)
}

// RotateRefreshToken resolves the refresh token to its session, deletes the
// old token and issues a fresh access/refresh pair. Rotation makes a leaked
// refresh token single-use.
func (s *sessionService) RotateRefreshToken(ctx context.Context, refreshToken string) (*models.Session, string, string, error) {
	refreshKey := fmt.Sprintf(constvars.RedisRefreshTokenKeyFormat, refreshToken)
	data, err := s.RedisRepository.Get(ctx, refreshKey)
	if err != nil {
		return nil, "", "", err
	}
	if data == "" {
		return nil, "", "", exceptions.ErrRefreshTokenUnknown(nil)
	}

	var sessionID string
	if err := json.Unmarshal([]byte(data), &sessionID); err != nil {
		return nil, "", "", exceptions.ErrCannotParseJSON(err)
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, "", "", err
	}

	if err := s.RedisRepository.Delete(ctx, refreshKey); err != nil {
		return nil, "", "", err
	}

	accessToken, err := utils.GenerateSessionJWT(session.SessionID, s.InternalConfig.JWT.Secret, s.InternalConfig.JWT.AccessTokenExpInMinute)
	if err != nil {
		return nil, "", "", err
	}

	newRefreshToken := uuid.New().String()
	newRefreshKey := fmt.Sprintf(constvars.RedisRefreshTokenKeyFormat, newRefreshToken)
	refreshTTL := time.Duration(s.InternalConfig.JWT.RefreshTokenExpInHour) * time.Hour
	err = s.RedisRepository.Set(ctx, newRefreshKey, session.SessionID, refreshTTL)
	if err != nil {
		return nil, "", "", err
	}

	return session, accessToken, newRefreshToken, nil
}
