package contracts

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"
)

type MailerService interface {
	EnqueueEmail(ctx context.Context, request *requests.EmailPayload) error
}
