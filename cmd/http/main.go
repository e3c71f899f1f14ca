package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/delivery/http/middlewares"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/delivery/http/routers"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/drivers/database"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/drivers/logger"
	smtpdriver "github.com/Looping69/Telehealth-System-sub002/internal/app/drivers/mailer"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/drivers/messaging"
	miniodriver "github.com/Looping69/Telehealth-System-sub002/internal/app/drivers/storage"
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
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/core/users"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/fhir/medplum"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/fhir/mockfhir"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/shared/mailer"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/shared/payment_gateway"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/shared/redis"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/shared/sessions"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if !internalConfig.UseMockBackend() {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.RabbitMQ.Host != "" {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	if internalConfig.UseMockBackend() {
		log.Println("Medplum credentials absent or mock forced, serving fixture data")
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to close dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	zapLogger := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Redis and sessions
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := sessions.NewSessionService(redisRepository, internalConfig, zapLogger)

	// FHIR backend and user repository switch together: without Medplum
	// credentials the API runs fully self-contained on fixtures.
	var fhirBackend contracts.FHIRBackend
	var userRepository contracts.UserRepository
	var err error
	if internalConfig.UseMockBackend() {
		fhirBackend, err = mockfhir.NewMockBackend(zapLogger)
		if err != nil {
			return err
		}
		userRepository, err = users.NewUserMockRepository(zapLogger)
		if err != nil {
			return err
		}
	} else {
		tokenManager := medplum.NewTokenManager(internalConfig, zapLogger)
		fhirBackend = medplum.NewMedplumBackend(internalConfig, tokenManager, zapLogger)
		userRepository = users.NewUserMongoRepository(
			bootstrap.MongoDB,
			bootstrap.DriverConfig.MongoDB.DbName,
			zapLogger,
		)
	}

	// Mailer: the worker and the queue publisher share the RabbitMQ
	// connection. Without a broker the API still runs, emails are skipped.
	mailerService := mailer.NewNoopMailerService(zapLogger)
	if bootstrap.RabbitMQ != nil {
		mailerService, err = mailer.NewMailerService(bootstrap.RabbitMQ, internalConfig.Mailer.Queue, zapLogger)
		if err != nil {
			return err
		}
		worker, err := mailer.NewWorker(
			bootstrap.RabbitMQ,
			smtpdriver.NewSMTPClient(bootstrap.DriverConfig),
			internalConfig.Mailer.Queue,
			zapLogger,
		)
		if err != nil {
			return err
		}
		bootstrap.WorkerStop, err = worker.Start()
		if err != nil {
			return err
		}
	}

	// Object storage
	minioStorage := storage.NewMinioStorage(miniodriver.NewMinio(bootstrap.DriverConfig))

	// Payment gateway
	stripeService := payment_gateway.NewStripeService(internalConfig, zapLogger)

	// Middlewares
	mw := middlewares.NewMiddlewares(zapLogger, sessionService, internalConfig)

	// Health
	healthUsecase := health.NewHealthUsecase(internalConfig.App.Version, redisRepository, userRepository, fhirBackend, zapLogger)
	healthController := health.NewHealthController(zapLogger, healthUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, internalConfig, zapLogger)
	authController := auth.NewAuthController(zapLogger, authUsecase)

	// Service catalog
	catalogUsecase := catalog.NewCatalogUsecase(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName, zapLogger)
	catalogController := catalog.NewCatalogController(zapLogger, catalogUsecase)

	// Patient
	patientUsecase := patients.NewPatientUsecase(fhirBackend, zapLogger)
	patientController := patients.NewPatientController(zapLogger, patientUsecase)

	// Practitioner
	practitionerUsecase := practitioners.NewPractitionerUsecase(fhirBackend, zapLogger)
	practitionerController := practitioners.NewPractitionerController(zapLogger, practitionerUsecase)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(fhirBackend, mailerService, zapLogger)
	appointmentController := appointments.NewAppointmentController(zapLogger, appointmentUsecase)

	// Observation
	observationUsecase := observations.NewObservationUsecase(fhirBackend, zapLogger)
	observationController := observations.NewObservationController(zapLogger, observationUsecase)

	// MedicationRequest
	medicationUsecase := medications.NewMedicationUsecase(fhirBackend, zapLogger)
	medicationController := medications.NewMedicationController(zapLogger, medicationUsecase)

	// Invoice
	invoiceUsecase := invoices.NewInvoiceUsecase(fhirBackend, zapLogger)
	invoiceController := invoices.NewInvoiceController(zapLogger, invoiceUsecase)

	// Generic FHIR passthrough
	fhirProxyUsecase := fhirproxy.NewFHIRProxyUsecase(fhirBackend, zapLogger)
	fhirProxyController := fhirproxy.NewFHIRProxyController(zapLogger, fhirProxyUsecase)

	// Uploads
	uploadUsecase := uploads.NewUploadUsecase(minioStorage, internalConfig, zapLogger)
	uploadController := uploads.NewUploadController(zapLogger, uploadUsecase, internalConfig)

	// Payments
	paymentUsecase := payments.NewPaymentUsecase(fhirBackend, stripeService, zapLogger)
	paymentController := payments.NewPaymentController(zapLogger, paymentUsecase)

	routers.SetupRoutes(bootstrap.Router, internalConfig, mw, &routers.Controllers{
		Health:       healthController,
		Auth:         authController,
		Catalog:      catalogController,
		Patient:      patientController,
		Practitioner: practitionerController,
		Appointment:  appointmentController,
		Observation:  observationController,
		Medication:   medicationController,
		Invoice:      invoiceController,
		FHIRProxy:    fhirProxyController,
		Upload:       uploadController,
		Payment:      paymentController,
	})

	return nil
}
