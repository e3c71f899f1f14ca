package contracts

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByProfileReference(ctx context.Context, profileReference string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	Ping(ctx context.Context) error
}
