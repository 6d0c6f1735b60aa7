package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig(rules ...Rule) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		Rules:         rules,
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(testConfig(Rule{
		Path: "/jobs/", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3,
	}))
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("client-1", "/jobs/abc/screen", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
	}

	allowed, info := limiter.Allow("client-1", "/jobs/abc/screen", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_SeparateClients(t *testing.T) {
	limiter := NewLimiter(testConfig(Rule{
		Path: "/resumes", Method: "POST", Limit: 5, Window: time.Minute, Burst: 1,
	}))
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a", "/resumes", "POST")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client-a", "/resumes", "POST")
	assert.False(t, allowed)

	// Other clients have their own bucket
	allowed, _ = limiter.Allow("client-b", "/resumes", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client", "/anything", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig(Rule{Path: "/resumes", Method: "POST", Limit: 1, Window: time.Minute, Burst: 1})
	cfg.Whitelist["10.0.0.1"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/resumes", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["10.0.0.2"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.2", "/health", "POST")
	assert.False(t, allowed)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("client", "/health", "GET")
		assert.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestConfigMatch_ExactBeatsPrefix(t *testing.T) {
	cfg := testConfig(
		Rule{Path: "/resumes/", Method: "POST", Limit: 1, Window: time.Minute},
		Rule{Path: "/resumes/batch", Method: "POST", Limit: 20, Window: time.Minute},
	)

	rule := cfg.match("/resumes/batch", "POST")
	assert.Equal(t, 20, rule.Limit)

	rule = cfg.match("/resumes/other", "POST")
	assert.Equal(t, 1, rule.Limit)
}

func TestConfigMatch_DefaultFallback(t *testing.T) {
	cfg := testConfig()
	rule := cfg.match("/unknown", "GET")
	assert.Equal(t, 100, rule.Limit)
}

func TestBucket_Refills(t *testing.T) {
	b := newBucket(1, 100) // 100 tokens per second

	allowed, _, _ := b.take()
	assert.True(t, allowed)
	allowed, _, _ = b.take()
	assert.False(t, allowed)

	time.Sleep(20 * time.Millisecond)
	allowed, _, _ = b.take()
	assert.True(t, allowed)
}
