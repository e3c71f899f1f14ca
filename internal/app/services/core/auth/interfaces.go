package auth

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	OAuthCallback(ctx context.Context, request *requests.OAuthCallback) (*responses.Login, error)
	RefreshToken(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshToken, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
}
