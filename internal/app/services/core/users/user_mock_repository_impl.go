package users

import (
	"context"
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MockUserEmailAdmin is the demo administrator injected by the auth middleware
// when the service runs without Medplum credentials.
const (
	MockUserEmailAdmin    = "admin@telehealth.example.com"
	MockUserEmailProvider = "provider@telehealth.example.com"
	MockUserEmailStaff    = "staff@telehealth.example.com"

	mockUserPassword = "telehealth-demo"
)

type userMockRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
	Log   *zap.Logger
}

// NewUserMockRepository seeds the demo user directory used in mock mode. All
// demo accounts share the same well-known password.
func NewUserMockRepository(logger *zap.Logger) (contracts.UserRepository, error) {
	repo := &userMockRepository{
		users: make(map[string]*models.User),
		Log:   logger,
	}

	hash, err := utils.HashPassword(mockUserPassword)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	seed := []*models.User{
		{
			ID:               "mock-user-admin",
			Email:            MockUserEmailAdmin,
			Name:             "Alex Morgan",
			Role:             constvars.TelehealthRoleAdmin,
			Password:         hash,
			ProfileReference: "Practitioner/practitioner-001",
		},
		{
			ID:               "mock-user-provider",
			Email:            MockUserEmailProvider,
			Name:             "Elena Rivera",
			Role:             constvars.TelehealthRoleProvider,
			Password:         hash,
			ProfileReference: "Practitioner/practitioner-001",
		},
		{
			ID:       "mock-user-staff",
			Email:    MockUserEmailStaff,
			Name:     "Jordan Lee",
			Role:     constvars.TelehealthRoleStaff,
			Password: hash,
		},
	}
	for _, user := range seed {
		user.CreatedAt = now
		user.UpdatedAt = now
		repo.users[user.ID] = user
	}
	return repo, nil
}

func (r *userMockRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	userModel.CreatedAt = now
	userModel.UpdatedAt = now
	r.users[userModel.ID] = userModel
	return userModel.ID, nil
}

func (r *userMockRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, exceptions.ErrUserNotExist(nil)
}

func (r *userMockRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	copied := *user
	return &copied, nil
}

func (r *userMockRepository) FindByProfileReference(ctx context.Context, profileReference string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ProfileReference == profileReference {
			copied := *user
			return &copied, nil
		}
	}
	return nil, exceptions.ErrUserNotExist(nil)
}

func (r *userMockRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userModel.ID]; !ok {
		return exceptions.ErrUserNotExist(nil)
	}
	userModel.UpdatedAt = time.Now().UTC()
	r.users[userModel.ID] = userModel
	return nil
}

func (r *userMockRepository) Ping(ctx context.Context) error {
	return nil
}
