package mcpsrv

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const allowedHeaders = "Content-Type, Accept, Authorization, X-API-Key, Mcp-Protocol-Version, Mcp-Session-Id"

// WrapHandler guards next with, in order: the origin allowlist (including
// CORS preflight), the shared rate limit and API key auth.
func WrapHandler(next http.Handler, cfg Config, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	rps := cfg.RPS
	if rps <= 0 {
		rps = 2
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		origins[origin] = struct{}{}
	}
	limiter := newLimiter(rps, burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
			if _, ok := origins[origin]; !ok {
				logger.Warn("origin rejected", zap.String("origin", origin))
				http.Error(w, "origin not allowed", http.StatusForbidden)
				return
			}
			writeCORSHeaders(w, origin)
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		if !limiter.Allow() {
			logger.Warn("rate limited", zap.String("remote", r.RemoteAddr))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		if cfg.APIKey != "" && !validAPIKey(r, cfg.APIKey) {
			logger.Warn("unauthorized request", zap.String("remote", r.RemoteAddr))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// newLimiter allows rps requests per second across all clients, with bursts
// of up to burst.
func newLimiter(rps float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func writeCORSHeaders(w http.ResponseWriter, origin string) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Vary", "Origin")
	h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", allowedHeaders)
}

// validAPIKey accepts the key from X-API-Key or an "Authorization: Bearer" header.
func validAPIKey(r *http.Request, expected string) bool {
	if secureEqual(strings.TrimSpace(r.Header.Get("X-API-Key")), expected) {
		return true
	}
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return false
	}
	return secureEqual(parts[1], expected)
}

func secureEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
