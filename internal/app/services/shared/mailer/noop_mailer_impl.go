package mailer

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type noopMailerService struct {
	Log *zap.Logger
}

// NewNoopMailerService degrades email delivery to a log line. Used when
// RabbitMQ is not configured, typically in mock mode.
func NewNoopMailerService(logger *zap.Logger) contracts.MailerService {
	return &noopMailerService{Log: logger}
}

func (s *noopMailerService) EnqueueEmail(ctx context.Context, request *requests.EmailPayload) error {
	s.Log.Info("noopMailerService.EnqueueEmail skipped delivery, mail queue not configured",
		zap.String(constvars.LoggingEmailKey, request.To),
		zap.String("subject", request.Subject),
	)
	return nil
}
