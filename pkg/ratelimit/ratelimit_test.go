package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiter_AllowAndBlock(t *testing.T) {
	t.Parallel()

	rl := NewLoginRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "attempt %d should pass", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	// Farklı IP kendi bucket'ını kullanır
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestLoginRateLimiter_ResetClearsCounter(t *testing.T) {
	t.Parallel()

	rl := NewLoginRateLimiter(2, time.Minute)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	// Başarılı login sayacı sıfırlar
	rl.Reset("1.2.3.4")
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestLoginRateLimiter_WindowExpires(t *testing.T) {
	t.Parallel()

	rl := NewLoginRateLimiter(1, 50*time.Millisecond)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestLoginRateLimiter_RetryAfterSeconds(t *testing.T) {
	t.Parallel()

	rl := NewLoginRateLimiter(1, time.Minute)
	rl.Allow("1.2.3.4")

	seconds := rl.RetryAfterSeconds("1.2.3.4")
	assert.Greater(t, seconds, 0)
	assert.LessOrEqual(t, seconds, 61)

	assert.Zero(t, rl.RetryAfterSeconds("9.9.9.9"))
}

func TestExtractIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "10.0.0.1:54321", nil, "10.0.0.1"},
		{"x-forwarded-for single", "10.0.0.1:54321", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"x-forwarded-for chain takes first", "10.0.0.1:54321", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"x-real-ip", "10.0.0.1:54321", map[string]string{"X-Real-IP": "203.0.113.9"}, "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ExtractIP(req))
		})
	}
}

func TestFormatRetryMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "45 second(s)", FormatRetryMessage(45))
	assert.Equal(t, "2 minute(s)", FormatRetryMessage(120))
}
