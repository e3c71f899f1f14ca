package contracts

import (
	"context"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
)

type CreatePaymentIntentInput struct {
	AmountInCents int64
	Currency      string
	InvoiceID     string
	Description   string
}

type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentInput) (*responses.PaymentIntent, error)
	VerifyWebhookSignature(payload []byte, signatureHeader string) error
}
