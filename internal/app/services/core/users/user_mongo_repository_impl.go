package users

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var (
	userMongoRepositoryInstance contracts.UserRepository
	onceUserMongoRepository     sync.Once
)

type userMongoRepository struct {
	Client *mongo.Client
	DBName string
	Log    *zap.Logger
}

func NewUserMongoRepository(client *mongo.Client, dbName string, logger *zap.Logger) contracts.UserRepository {
	onceUserMongoRepository.Do(func() {
		userMongoRepositoryInstance = &userMongoRepository{
			Client: client,
			DBName: dbName,
			Log:    logger,
		}
	})
	return userMongoRepositoryInstance
}

func (r *userMongoRepository) collection() *mongo.Collection {
	return r.Client.Database(r.DBName).Collection(constvars.MongoCollectionUsers)
}

func (r *userMongoRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	userModel.CreatedAt = now
	userModel.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, userModel); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return userModel.ID, nil
}

func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

func (r *userMongoRepository) FindByProfileReference(ctx context.Context, profileReference string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"profileReference": profileReference})
}

func (r *userMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	user := new(models.User)
	err := r.collection().FindOne(ctx, filter).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, exceptions.ErrUserNotExist(err)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return user, nil
}

func (r *userMongoRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	userModel.UpdatedAt = time.Now().UTC()

	result, err := r.collection().ReplaceOne(ctx, bson.M{"_id": userModel.ID}, userModel)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrUserNotExist(nil)
	}
	return nil
}

func (r *userMongoRepository) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx, readpref.Primary())
}
