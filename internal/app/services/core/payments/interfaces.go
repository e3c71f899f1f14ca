package payments

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePaymentIntentForInvoice(ctx context.Context, invoiceID string) (*responses.PaymentIntent, error)
	HandleWebhookEvent(ctx context.Context, payload []byte, signatureHeader string) error
}
