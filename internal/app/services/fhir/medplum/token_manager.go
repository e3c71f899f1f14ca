package medplum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// refreshSkew is how long before the real expiry a cached token is treated as
// expired, so in-flight requests never carry a token about to lapse.
const refreshSkew = 60 * time.Second

// TokenManager caches the client-credentials token used for upstream calls
// and refreshes it before expiry.
type TokenManager struct {
	tokenUrl     string
	clientID     string
	clientSecret string
	client       *http.Client
	log          *zap.Logger

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewTokenManager(internalConfig *config.InternalConfig, logger *zap.Logger) *TokenManager {
	timeout := time.Duration(internalConfig.Medplum.TimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TokenManager{
		tokenUrl:     strings.TrimRight(internalConfig.Medplum.BaseUrl, "/") + "/oauth2/token",
		clientID:     internalConfig.Medplum.ClientID,
		clientSecret: internalConfig.Medplum.ClientSecret,
		client:       &http.Client{Timeout: timeout},
		log:          logger,
	}
}

func (tm *TokenManager) GetToken(ctx context.Context) (string, error) {
	tm.mu.RLock()
	if tm.token != "" && time.Now().Before(tm.expiresAt) {
		defer tm.mu.RUnlock()
		return tm.token, nil
	}
	tm.mu.RUnlock()

	tm.mu.Lock()
	defer tm.mu.Unlock()

	// Double-check after acquiring the write lock
	if tm.token != "" && time.Now().Before(tm.expiresAt) {
		return tm.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", tm.clientID)
	form.Set("client_secret", tm.clientSecret)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, tm.tokenUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	resp, err := tm.client.Do(req)
	if err != nil {
		return "", exceptions.ErrMedplumFetchToken(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", exceptions.ErrMedplumFetchToken(err)
	}
	if resp.StatusCode != constvars.StatusOK {
		tm.log.Error("TokenManager.GetToken upstream rejected credentials",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", exceptions.ErrMedplumFetchToken(fmt.Errorf("token endpoint returned status %d", resp.StatusCode))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return "", exceptions.ErrMedplumFetchToken(err)
	}
	if result.AccessToken == "" {
		return "", exceptions.ErrMedplumFetchToken(fmt.Errorf("token endpoint returned an empty access_token"))
	}

	tm.token = result.AccessToken
	tm.expiresAt = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - refreshSkew)

	tm.log.Info("TokenManager.GetToken refreshed upstream token",
		zap.Int("expires_in", result.ExpiresIn),
	)
	return tm.token, nil
}

// Invalidate drops the cached token so the next call fetches a new one. Used
// after the upstream answers 401 despite a seemingly valid token.
func (tm *TokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.token = ""
	tm.expiresAt = time.Time{}
}
