package catalog

import (
	"context"
	"sync"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/models"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	catalogUsecaseInstance CatalogUsecase
	onceCatalogUsecase     sync.Once
)

// builtinServices is served when no database is configured or the services
// collection is empty, mirroring the demo catalog of the dashboard.
var builtinServices = []models.Service{
	{ID: "svc-video-consult", Name: "Video Consultation", Description: "30 minute video visit with a provider", Category: "consultation", Price: 12000, Currency: "USD", DurationMin: 30, Active: true},
	{ID: "svc-follow-up", Name: "Follow-up Visit", Description: "15 minute follow-up call", Category: "consultation", Price: 6000, Currency: "USD", DurationMin: 15, Active: true},
	{ID: "svc-prescription-renewal", Name: "Prescription Renewal", Description: "Asynchronous prescription renewal review", Category: "pharmacy", Price: 2500, Currency: "USD", Active: true},
	{ID: "svc-lab-review", Name: "Lab Result Review", Description: "Provider review of uploaded lab results", Category: "diagnostics", Price: 4500, Currency: "USD", DurationMin: 20, Active: true},
}

type catalogUsecase struct {
	MongoClient *mongo.Client
	DBName      string
	Log         *zap.Logger
}

// NewCatalogUsecase accepts a nil client; the builtin catalog covers that case.
func NewCatalogUsecase(mongoClient *mongo.Client, dbName string, logger *zap.Logger) CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		catalogUsecaseInstance = &catalogUsecase{
			MongoClient: mongoClient,
			DBName:      dbName,
			Log:         logger,
		}
	})
	return catalogUsecaseInstance
}

func (uc *catalogUsecase) GetServices(ctx context.Context) ([]responses.CatalogService, error) {
	services := builtinServices

	if uc.MongoClient != nil {
		stored, err := uc.loadStoredServices(ctx)
		if err != nil {
			return nil, err
		}
		if len(stored) > 0 {
			services = stored
		}
	}

	result := make([]responses.CatalogService, 0, len(services))
	for _, service := range services {
		result = append(result, responses.CatalogService{
			ID:          service.ID,
			Name:        service.Name,
			Description: service.Description,
			Category:    service.Category,
			Price:       service.Price,
			Currency:    service.Currency,
			DurationMin: service.DurationMin,
			Active:      service.Active,
		})
	}
	return result, nil
}

func (uc *catalogUsecase) loadStoredServices(ctx context.Context) ([]models.Service, error) {
	collection := uc.MongoClient.Database(uc.DBName).Collection(constvars.MongoCollectionServices)

	cursor, err := collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, nil
}
