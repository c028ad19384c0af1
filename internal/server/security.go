package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the response headers applied to every
// observability endpoint.
type SecurityConfig struct {
	// EnableCORS toggles CORS header emission.
	EnableCORS bool
	// AllowedOrigins lists origins permitted by CORS. "*" allows any.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised to CORS clients.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the configuration used when the caller
// does not override it. The endpoints are read-only, so wildcard CORS
// with GET is acceptable.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware wraps next with standard security headers and,
// when enabled, CORS handling. Preflight OPTIONS requests are answered
// without invoking next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin, ok := corsOrigin(config.AllowedOrigins, r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
		}

		next(w, r)
	}
}

// corsOrigin resolves the Access-Control-Allow-Origin value for a
// request origin. A wildcard entry matches regardless of the request
// origin; specific entries require an exact match.
func corsOrigin(allowed []string, requestOrigin string) (string, bool) {
	for _, o := range allowed {
		if o == "*" {
			return "*", true
		}
		if requestOrigin != "" && o == requestOrigin {
			return o, true
		}
	}
	return "", false
}
