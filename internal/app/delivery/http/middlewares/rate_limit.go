package middlewares

import (
	"net"
	"net/http"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// AuthRateLimit slows down credential guessing on the auth endpoints: each
// client IP gets a token bucket sized to the configured attempt budget that
// refills over the block window.
func (m *Middlewares) AuthRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := m.authLimiterFor(clientIP(r))
		if !limiter.Allow() {
			m.Log.Warn("auth rate limit exceeded",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
				constvars.StatusTooManyRequests,
				constvars.ErrClientCannotProcessRequest,
				"too many authentication attempts, try again later",
			))
			return
		}
		next.ServeHTTP(w, r)
	})
}

type authLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func (m *Middlewares) authLimiterFor(ip string) *rate.Limiter {
	m.limiterMu.Lock()
	defer m.limiterMu.Unlock()

	maxAttempts := m.InternalConfig.App.AuthMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	blockDuration := time.Duration(m.InternalConfig.App.AuthBlockDurationInMinute) * time.Minute
	if blockDuration <= 0 {
		blockDuration = 15 * time.Minute
	}

	now := time.Now()
	m.sweepIdleLimiters(now, blockDuration)

	if entry, ok := m.authLimiters[ip]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	entry := &authLimiterEntry{
		limiter:  rate.NewLimiter(rate.Every(blockDuration/time.Duration(maxAttempts)), maxAttempts),
		lastSeen: now,
	}
	m.authLimiters[ip] = entry
	return entry.limiter
}

// sweepIdleLimiters drops buckets idle for a full block window; their tokens
// have fully refilled, so forgetting them loses no throttling state. Runs at
// most once per window. Caller holds limiterMu.
func (m *Middlewares) sweepIdleLimiters(now time.Time, blockDuration time.Duration) {
	if now.Sub(m.lastSweep) < blockDuration {
		return
	}
	m.lastSweep = now

	for ip, entry := range m.authLimiters {
		if now.Sub(entry.lastSeen) >= blockDuration {
			delete(m.authLimiters, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
