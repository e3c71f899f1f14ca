package payment_gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/responses"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	stripeBaseUrl            = "https://api.stripe.com/v1"
	webhookToleranceInSecond = 300
)

type stripeService struct {
	SecretKey     string
	WebhookSecret string
	Client        *http.Client
	Log           *zap.Logger
}

func NewStripeService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	return &stripeService{
		SecretKey:     internalConfig.Stripe.SecretKey,
		WebhookSecret: internalConfig.Stripe.WebhookSecret,
		Client:        &http.Client{Timeout: 15 * time.Second},
		Log:           logger,
	}
}

func (s *stripeService) CreatePaymentIntent(ctx context.Context, input *contracts.CreatePaymentIntentInput) (*responses.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(input.AmountInCents, 10))
	form.Set("currency", strings.ToLower(input.Currency))
	form.Set("description", input.Description)
	form.Set("metadata[invoice_id]", input.InvoiceID)
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, stripeBaseUrl+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.SetBasicAuth(s.SecretKey, "")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrStripeCreatePaymentIntent(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		s.Log.Error("stripeService.CreatePaymentIntent upstream error",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingInvoiceIDKey, input.InvoiceID),
		)
		return nil, exceptions.ErrStripeCreatePaymentIntent(fmt.Errorf("stripe returned status %d", resp.StatusCode))
	}

	var intent struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
		Amount       int64  `json:"amount"`
		Currency     string `json:"currency"`
		Status       string `json:"status"`
	}
	if err := json.Unmarshal(bodyBytes, &intent); err != nil {
		return nil, exceptions.ErrStripeCreatePaymentIntent(err)
	}

	return &responses.PaymentIntent{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Status:          intent.Status,
	}, nil
}

// VerifyWebhookSignature checks the Stripe-Signature header: HMAC-SHA256 of
// "<timestamp>.<payload>" keyed with the webhook secret, within a tolerance
// window to limit replay.
func (s *stripeService) VerifyWebhookSignature(payload []byte, signatureHeader string) error {
	if signatureHeader == "" {
		return exceptions.ErrStripeWebhookSignature(fmt.Errorf("missing signature header"))
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(signatureHeader, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}

	if timestamp == "" || len(signatures) == 0 {
		return exceptions.ErrStripeWebhookSignature(fmt.Errorf("malformed signature header"))
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return exceptions.ErrStripeWebhookSignature(err)
	}
	age := time.Since(time.Unix(ts, 0))
	if age > webhookToleranceInSecond*time.Second || age < -webhookToleranceInSecond*time.Second {
		return exceptions.ErrStripeWebhookSignature(fmt.Errorf("timestamp outside tolerance window"))
	}

	mac := hmac.New(sha256.New, []byte(s.WebhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, signature := range signatures {
		if hmac.Equal([]byte(expected), []byte(signature)) {
			return nil
		}
	}
	return exceptions.ErrStripeWebhookSignature(fmt.Errorf("no matching v1 signature"))
}
