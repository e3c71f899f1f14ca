package uploads

import (
	"context"
	"net/http"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const multipartFileField = "file"

type UploadController struct {
	Log            *zap.Logger
	UploadUsecase  UploadUsecase
	InternalConfig *config.InternalConfig
}

func NewUploadController(logger *zap.Logger, uploadUsecase UploadUsecase, internalConfig *config.InternalConfig) *UploadController {
	return &UploadController{
		Log:            logger,
		UploadUsecase:  uploadUsecase,
		InternalConfig: internalConfig,
	}
}

func (uc *UploadController) UploadFile(w http.ResponseWriter, r *http.Request) {
	maxBytes := uc.InternalConfig.Uploads.MaxUploadSizeInMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(uc.Log, w, exceptions.ErrBodyTooLarge(err))
		return
	}

	file, fileHeader, err := r.FormFile(multipartFileField)
	if err != nil {
		utils.BuildErrorResponse(uc.Log, w, exceptions.ErrReadBody(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := uc.UploadUsecase.UploadFile(ctx, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(uc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadFileSuccessMessage, result)
}

func (uc *UploadController) GetFileURL(w http.ResponseWriter, r *http.Request) {
	// Object names carry a prefix path, so the route matches them with a
	// wildcard instead of a single segment.
	objectName := chi.URLParam(r, "*")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := uc.UploadUsecase.GetFileURL(ctx, objectName)
	if err != nil {
		utils.BuildErrorResponse(uc.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFileURLSuccessMessage, result)
}
