package middlewares

import (
	"testing"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAuthRateLimit_IdleLimiterEviction(t *testing.T) {
	mw := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{
		App: config.App{
			AuthMaxAttempts:           3,
			AuthBlockDurationInMinute: 1,
		},
	})

	mw.authLimiterFor("203.0.113.7")
	mw.authLimiterFor("203.0.113.8")
	assert.Len(t, mw.authLimiters, 2)

	// Backdate one bucket past the block window and make a sweep due.
	mw.limiterMu.Lock()
	mw.authLimiters["203.0.113.7"].lastSeen = time.Now().Add(-2 * time.Minute)
	mw.lastSweep = time.Now().Add(-2 * time.Minute)
	mw.limiterMu.Unlock()

	mw.authLimiterFor("203.0.113.8")

	mw.limiterMu.Lock()
	defer mw.limiterMu.Unlock()
	assert.NotContains(t, mw.authLimiters, "203.0.113.7",
		"a bucket idle for a full window has refilled and can be forgotten")
	assert.Contains(t, mw.authLimiters, "203.0.113.8",
		"recently seen buckets survive the sweep")
}

func TestAuthRateLimit_SweepKeepsThrottlingState(t *testing.T) {
	mw := NewMiddlewares(zap.NewNop(), nil, &config.InternalConfig{
		App: config.App{
			AuthMaxAttempts:           2,
			AuthBlockDurationInMinute: 1,
		},
	})

	// Exhaust the bucket for one client.
	limiter := mw.authLimiterFor("198.51.100.9")
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	// A sweep inside the block window leaves the exhausted bucket alone.
	mw.limiterMu.Lock()
	mw.lastSweep = time.Now().Add(-2 * time.Minute)
	mw.limiterMu.Unlock()

	assert.False(t, mw.authLimiterFor("198.51.100.9").Allow(),
		"the block must outlive the sweep while the client keeps retrying")
}
