package payments

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	webhookEventPaymentSucceeded = "payment_intent.succeeded"
	defaultCurrency              = "USD"
)

var (
	paymentUsecaseInstance PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	FHIRBackend    contracts.FHIRBackend
	PaymentGateway contracts.PaymentGatewayService
	Log            *zap.Logger
}

func NewPaymentUsecase(fhirBackend contracts.FHIRBackend, paymentGateway contracts.PaymentGatewayService, logger *zap.Logger) PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			FHIRBackend:    fhirBackend,
			PaymentGateway: paymentGateway,
			Log:            logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreatePaymentIntentForInvoice(ctx context.Context, invoiceID string) (*responses.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePaymentIntentForInvoice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
	)

	raw, err := uc.FHIRBackend.ReadResource(ctx, constvars.ResourceInvoice, invoiceID)
	if err != nil {
		return nil, err
	}

	invoice := new(fhir_dto.Invoice)
	if err := json.Unmarshal(raw, invoice); err != nil {
		return nil, exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceInvoice)
	}

	if invoice.Status != constvars.FhirInvoiceStatusIssued {
		return nil, exceptions.ErrInvoiceNotPayable(fmt.Errorf("invoice %s has status %s", invoiceID, invoice.Status))
	}

	total := invoice.TotalGross
	if total == nil {
		total = invoice.TotalNet
	}
	if total == nil || total.Value <= 0 {
		return nil, exceptions.ErrInvoiceNotPayable(fmt.Errorf("invoice %s has no payable total", invoiceID))
	}

	currency := total.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	intent, err := uc.PaymentGateway.CreatePaymentIntent(ctx, &contracts.CreatePaymentIntentInput{
		AmountInCents: int64(math.Round(total.Value * 100)),
		Currency:      currency,
		InvoiceID:     invoiceID,
		Description:   fmt.Sprintf("Telehealth invoice %s", invoiceID),
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase created payment intent",
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
		zap.Int64("amount_in_cents", intent.Amount),
	)
	return intent, nil
}

func (uc *paymentUsecase) HandleWebhookEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	if err := uc.PaymentGateway.VerifyWebhookSignature(payload, signatureHeader); err != nil {
		return err
	}

	var event struct {
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID       string            `json:"id"`
				Status   string            `json:"status"`
				Metadata map[string]string `json:"metadata"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	// Only the success event moves the invoice; everything else is
	// acknowledged so Stripe stops retrying.
	if event.Type != webhookEventPaymentSucceeded {
		uc.Log.Info("paymentUsecase ignoring webhook event",
			zap.String("event_type", event.Type),
		)
		return nil
	}

	invoiceID := event.Data.Object.Metadata["invoice_id"]
	if invoiceID == "" {
		return exceptions.WrapWithoutError(constvars.StatusBadRequest,
			constvars.ErrClientCannotProcessRequest, "webhook payment intent has no invoice_id metadata")
	}

	raw, err := uc.FHIRBackend.ReadResource(ctx, constvars.ResourceInvoice, invoiceID)
	if err != nil {
		return err
	}

	resource := make(map[string]interface{})
	if err := json.Unmarshal(raw, &resource); err != nil {
		return exceptions.ErrDecodeFHIRResponse(err, constvars.ResourceInvoice)
	}
	resource["status"] = constvars.FhirInvoiceStatusBalanced

	updated, err := json.Marshal(resource)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if _, err := uc.FHIRBackend.UpdateResource(ctx, constvars.ResourceInvoice, invoiceID, updated); err != nil {
		return err
	}

	uc.Log.Info("paymentUsecase marked invoice balanced",
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
		zap.String("payment_intent_id", event.Data.Object.ID),
	)
	return nil
}
