package routers

import (
	"github.com/Looping69/Telehealth-System-sub002/internal/app/delivery/http/middlewares"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, mw *middlewares.Middlewares, controllers *Controllers) {
	router.With(mw.Authenticate).Post(
		"/invoices"+param(constvars.URLParamInvoiceID)+"/pay",
		controllers.Payment.CreatePaymentIntent,
	)

	// The webhook authenticates through its signature, not a session.
	router.Post("/payments/webhook", controllers.Payment.HandleWebhook)
}
