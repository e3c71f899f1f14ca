package contracts

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) (accessToken, refreshToken string, err error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DestroySession(ctx context.Context, sessionID string) error
	RotateRefreshToken(ctx context.Context, refreshToken string) (*models.Session, string, string, error)
}
