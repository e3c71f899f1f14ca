package middlewares

import (
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig

	limiterMu    sync.Mutex
	authLimiters map[string]*authLimiterEntry
	lastSweep    time.Time
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		authLimiters:   make(map[string]*authLimiterEntry),
		lastSweep:      time.Now(),
	}
}
