package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/fhir/mockfhir"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakePaymentGateway captures the intent input and lets tests force a
// signature verdict.
type fakePaymentGateway struct {
	lastIntent      *contracts.CreatePaymentIntentInput
	rejectSignature bool
}

func (f *fakePaymentGateway) CreatePaymentIntent(ctx context.Context, input *contracts.CreatePaymentIntentInput) (*responses.PaymentIntent, error) {
	f.lastIntent = input
	return &responses.PaymentIntent{
		PaymentIntentID: "pi_test_123",
		ClientSecret:    "pi_test_123_secret",
		Amount:          input.AmountInCents,
		Currency:        input.Currency,
		Status:          "requires_payment_method",
	}, nil
}

func (f *fakePaymentGateway) VerifyWebhookSignature(payload []byte, signatureHeader string) error {
	if f.rejectSignature {
		return errors.New("signature mismatch")
	}
	return nil
}

var (
	testPaymentUsecase PaymentUsecase
	testGateway        *fakePaymentGateway
	testBackend        contracts.FHIRBackend
)

func setupPaymentUsecase(t *testing.T) PaymentUsecase {
	if testPaymentUsecase != nil {
		return testPaymentUsecase
	}

	backend, err := mockfhir.NewMockBackend(zap.NewNop())
	assert.NoError(t, err)

	testBackend = backend
	testGateway = &fakePaymentGateway{}
	testPaymentUsecase = NewPaymentUsecase(backend, testGateway, zap.NewNop())
	return testPaymentUsecase
}

func TestPaymentUsecase_CreatePaymentIntentForInvoice(t *testing.T) {
	uc := setupPaymentUsecase(t)
	ctx := context.Background()

	t.Run("Issued Invoice", func(t *testing.T) {
		intent, err := uc.CreatePaymentIntentForInvoice(ctx, "invoice-001")
		assert.NoError(t, err)
		assert.Equal(t, "pi_test_123", intent.PaymentIntentID)
		assert.Equal(t, int64(12000), intent.Amount, "120.00 USD becomes 12000 cents")

		assert.Equal(t, "invoice-001", testGateway.lastIntent.InvoiceID)
		assert.Equal(t, "USD", testGateway.lastIntent.Currency)
	})

	t.Run("Balanced Invoice Is Not Payable", func(t *testing.T) {
		_, err := uc.CreatePaymentIntentForInvoice(ctx, "invoice-002")
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 422, customErr.StatusCode)
	})

	t.Run("Unknown Invoice", func(t *testing.T) {
		_, err := uc.CreatePaymentIntentForInvoice(ctx, "no-such-invoice")
		assert.Error(t, err)
	})
}

func TestPaymentUsecase_HandleWebhookEvent(t *testing.T) {
	uc := setupPaymentUsecase(t)
	ctx := context.Background()

	t.Run("Succeeded Payment Balances the Invoice", func(t *testing.T) {
		payload := []byte(`{
			"type": "payment_intent.succeeded",
			"data": {"object": {"id": "pi_test_123", "status": "succeeded", "metadata": {"invoice_id": "invoice-001"}}}
		}`)

		assert.NoError(t, uc.HandleWebhookEvent(ctx, payload, "t=1,v1=ok"))

		raw, err := testBackend.ReadResource(ctx, constvars.ResourceInvoice, "invoice-001")
		assert.NoError(t, err)

		var invoice map[string]interface{}
		assert.NoError(t, json.Unmarshal(raw, &invoice))
		assert.Equal(t, constvars.FhirInvoiceStatusBalanced, invoice["status"])
		assert.NotNil(t, invoice["totalGross"], "fields outside the status patch survive")
	})

	t.Run("Invalid Signature Is Rejected", func(t *testing.T) {
		testGateway.rejectSignature = true
		defer func() { testGateway.rejectSignature = false }()

		err := uc.HandleWebhookEvent(ctx, []byte(`{}`), "t=1,v1=bad")
		assert.Error(t, err)
	})

	t.Run("Other Events Are Acknowledged", func(t *testing.T) {
		payload := []byte(`{
			"type": "payment_intent.payment_failed",
			"data": {"object": {"id": "pi_test_456", "status": "requires_payment_method", "metadata": {"invoice_id": "invoice-002"}}}
		}`)

		assert.NoError(t, uc.HandleWebhookEvent(ctx, payload, "t=1,v1=ok"),
			"non-success events return 200 so Stripe stops retrying")
	})

	t.Run("Missing Invoice Metadata", func(t *testing.T) {
		payload := []byte(`{
			"type": "payment_intent.succeeded",
			"data": {"object": {"id": "pi_test_789", "status": "succeeded", "metadata": {}}}
		}`)

		err := uc.HandleWebhookEvent(ctx, payload, "t=1,v1=ok")
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}
