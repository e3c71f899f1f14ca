package routers

import (
	"github.com/Looping69/Telehealth-System-sub002/internal/app/delivery/http/middlewares"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *auth.AuthController) {
	router.With(mw.AuthRateLimit).Post("/login", authController.Login)
	router.With(mw.AuthRateLimit).Post("/refresh", authController.RefreshToken)
	router.Get("/callback", authController.OAuthCallback)
	router.With(mw.Authenticate).Post("/logout", authController.Logout)
	router.With(mw.Authenticate).Get("/me", authController.GetProfile)
	router.With(mw.Authenticate).Get("/validate", authController.ValidateToken)
}
