package routers

import (
	"fmt"
	"strings"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/delivery/http/middlewares"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/appointments"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/auth"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/catalog"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/fhirproxy"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/health"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/invoices"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/medications"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/observations"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/patients"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/payments"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/practitioners"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/uploads"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Health       *health.HealthController
	Auth         *auth.AuthController
	Catalog      *catalog.CatalogController
	Patient      *patients.PatientController
	Practitioner *practitioners.PractitionerController
	Appointment  *appointments.AppointmentController
	Observation  *observations.ObservationController
	Medication   *medications.MedicationController
	Invoice      *invoices.InvoiceController
	FHIRProxy    *fhirproxy.FHIRProxyController
	Upload       *uploads.UploadController
	Payment      *payments.PaymentController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.App.CORSAllowedOrigin, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "Stripe-Signature"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(mw.Log))
	router.Use(mw.ErrorHandler)
	router.Use(mw.RequestBodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Get("/health", controllers.Health.Check)
		r.Get("/services", controllers.Catalog.GetServices)

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, mw, controllers.Auth)
		})

		r.Route("/fhir", func(r chi.Router) {
			attachFHIRRoutes(r, mw, controllers)
		})

		r.Route("/uploads", func(r chi.Router) {
			attachUploadRoutes(r, mw, controllers.Upload)
		})

		attachPaymentRoutes(r, mw, controllers)
	})
}
