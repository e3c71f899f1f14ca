package uploads

import (
	"context"
	"io"
	"mime/multipart"
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"go.uber.org/zap"
)

const objectNamePrefix = "uploads"

var (
	uploadUsecaseInstance UploadUsecase
	onceUploadUsecase     sync.Once
)

type uploadUsecase struct {
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewUploadUsecase(storage contracts.Storage, internalConfig *config.InternalConfig, logger *zap.Logger) UploadUsecase {
	onceUploadUsecase.Do(func() {
		uploadUsecaseInstance = &uploadUsecase{
			Storage:        storage,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return uploadUsecaseInstance
}

func (uc *uploadUsecase) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader) (*responses.Upload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	bucket := uc.InternalConfig.Uploads.Bucket
	objectName := utils.GenerateObjectName(objectNamePrefix, fileHeader.Filename)

	uc.Log.Info("uploadUsecase.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, bucket),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	storedName, err := uc.Storage.UploadFile(ctx, file, fileHeader, objectName, bucket)
	if err != nil {
		return nil, err
	}

	return &responses.Upload{
		ObjectName:  storedName,
		Bucket:      bucket,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
	}, nil
}

func (uc *uploadUsecase) GetFileURL(ctx context.Context, objectName string) (*responses.UploadURL, error) {
	expiry := time.Duration(uc.InternalConfig.Uploads.PresignExpInMinute) * time.Minute

	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Uploads.Bucket, objectName, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.UploadURL{
		ObjectName: objectName,
		URL:        url,
		ExpiresIn:  uc.InternalConfig.Uploads.PresignExpInMinute * 60,
	}, nil
}
