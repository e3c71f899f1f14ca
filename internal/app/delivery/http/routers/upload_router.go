package routers

import (
	"github.com/Looping69/Telehealth-System-sub002/internal/app/delivery/http/middlewares"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/uploads"

	"github.com/go-chi/chi/v5"
)

func attachUploadRoutes(router chi.Router, mw *middlewares.Middlewares, uploadController *uploads.UploadController) {
	router.Use(mw.Authenticate)

	router.Post("/", uploadController.UploadFile)
	router.Get("/*", uploadController.GetFileURL)
}
