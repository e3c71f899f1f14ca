package uploads

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
)

type UploadUsecase interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader) (*responses.Upload, error)
	GetFileURL(ctx context.Context, objectName string) (*responses.UploadURL, error)
}
