package payment_gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_test_secret"

func newTestStripeService() *stripeService {
	service := NewStripeService(&config.InternalConfig{
		Stripe: config.Stripe{
			SecretKey:     "sk_test_123",
			WebhookSecret: testWebhookSecret,
		},
	}, zap.NewNop())
	return service.(*stripeService)
}

func signPayload(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	service := newTestStripeService()
	payload := []byte(`{"type":"payment_intent.succeeded"}`)

	t.Run("Valid Signature", func(t *testing.T) {
		now := time.Now().Unix()
		header := fmt.Sprintf("t=%d,v1=%s", now, signPayload(testWebhookSecret, now, payload))

		assert.NoError(t, service.VerifyWebhookSignature(payload, header))
	})

	t.Run("Multiple Signatures One Valid", func(t *testing.T) {
		now := time.Now().Unix()
		header := fmt.Sprintf("t=%d,v1=%s,v1=%s", now, "deadbeef", signPayload(testWebhookSecret, now, payload))

		assert.NoError(t, service.VerifyWebhookSignature(payload, header))
	})

	t.Run("Missing Header", func(t *testing.T) {
		assert.Error(t, service.VerifyWebhookSignature(payload, ""))
	})

	t.Run("Malformed Header", func(t *testing.T) {
		assert.Error(t, service.VerifyWebhookSignature(payload, "garbage"))
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		now := time.Now().Unix()
		header := fmt.Sprintf("t=%d,v1=%s", now, signPayload("whsec_other_secret", now, payload))

		assert.Error(t, service.VerifyWebhookSignature(payload, header))
	})

	t.Run("Tampered Payload", func(t *testing.T) {
		now := time.Now().Unix()
		header := fmt.Sprintf("t=%d,v1=%s", now, signPayload(testWebhookSecret, now, payload))

		tampered := []byte(`{"type":"payment_intent.succeeded","amount":0}`)
		assert.Error(t, service.VerifyWebhookSignature(tampered, header))
	})

	t.Run("Stale Timestamp", func(t *testing.T) {
		stale := time.Now().Add(-10 * time.Minute).Unix()
		header := fmt.Sprintf("t=%d,v1=%s", stale, signPayload(testWebhookSecret, stale, payload))

		assert.Error(t, service.VerifyWebhookSignature(payload, header))
	})

	t.Run("Non-Numeric Timestamp", func(t *testing.T) {
		header := "t=notatime,v1=" + strconv.Itoa(0)
		assert.Error(t, service.VerifyWebhookSignature(payload, header))
	})
}
