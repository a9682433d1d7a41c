package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planbeau/booking-service/pkg/logger"
)

func TestRateLimiter(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 2, nil, logger.NewNop())
	limiter.now = func() time.Time { return now }

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1"))

	// у другого клиента свой лимит
	assert.Equal(t, http.StatusOK, do("10.0.0.2"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, do("10.0.0.1"))
}

func TestRateLimiter_SpoofedForwardedFor(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 1, nil, logger.NewNop())
	limiter.now = func() time.Time { return now }

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for _, forwarded := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "203.0.113.7:5555"
		r.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestTrustedProxies_ClientIP(t *testing.T) {
	proxies, err := ParseTrustedProxies([]string{"10.0.0.0/8", " 192.0.2.10 ", ""})
	require.NoError(t, err)

	tests := []struct {
		name      string
		proxies   TrustedProxies
		forwarded []string
		remote    string
		want      string
	}{
		{name: "remote_addr", proxies: proxies, remote: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "remote_without_port", proxies: proxies, remote: "192.0.2.9", want: "192.0.2.9"},
		{
			name:      "no_trusted_proxies_ignores_header",
			forwarded: []string{"203.0.113.5"},
			remote:    "10.0.0.1:80",
			want:      "10.0.0.1",
		},
		{
			name:      "untrusted_remote_ignores_header",
			proxies:   proxies,
			forwarded: []string{"203.0.113.5"},
			remote:    "198.51.100.4:80",
			want:      "198.51.100.4",
		},
		{
			name:      "trusted_proxy",
			proxies:   proxies,
			forwarded: []string{"203.0.113.5"},
			remote:    "10.0.0.1:80",
			want:      "203.0.113.5",
		},
		{
			name:      "spoofed_prefix_is_skipped",
			proxies:   proxies,
			forwarded: []string{"1.2.3.4, 203.0.113.5, 10.1.1.1"},
			remote:    "192.0.2.10:80",
			want:      "203.0.113.5",
		},
		{
			name:      "multiple_headers",
			proxies:   proxies,
			forwarded: []string{"1.2.3.4", "203.0.113.6"},
			remote:    "10.0.0.1:80",
			want:      "203.0.113.6",
		},
		{
			name:      "garbage_hop",
			proxies:   proxies,
			forwarded: []string{"not-an-ip"},
			remote:    "10.0.0.1:80",
			want:      "10.0.0.1",
		},
		{
			name:      "only_proxies_in_chain",
			proxies:   proxies,
			forwarded: []string{"10.2.2.2"},
			remote:    "10.0.0.1:80",
			want:      "10.2.2.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for _, value := range tt.forwarded {
				r.Header.Add("X-Forwarded-For", value)
			}
			assert.Equal(t, tt.want, tt.proxies.ClientIP(r))
		})
	}
}

func TestParseTrustedProxies_Invalid(t *testing.T) {
	_, err := ParseTrustedProxies([]string{"10.0.0.0/33"})
	assert.Error(t, err)

	_, err = ParseTrustedProxies([]string{"proxy.local"})
	assert.Error(t, err)
}
