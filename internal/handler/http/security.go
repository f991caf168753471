package http

import (
	"net/http"
	"strings"
)

// Policy is an ordered list of Content-Security-Policy directives.
type Policy [][]string

// String renders p as a header value, e.g. "default-src 'none'; frame-ancestors 'none'".
func (p Policy) String() string {
	parts := make([]string, 0, len(p))
	for _, d := range p {
		parts = append(parts, strings.Join(d, " "))
	}
	return strings.Join(parts, "; ")
}

// StrictPolicy suits JSON responses, which never load subresources.
func StrictPolicy() Policy {
	return Policy{
		{"default-src", "'none'"},
		{"frame-ancestors", "'none'"},
		{"base-uri", "'none'"},
		{"form-action", "'none'"},
	}
}

// SwaggerUIPolicy allows the inline bootstrap script and styles of the
// Swagger UI bundle.
func SwaggerUIPolicy() Policy {
	return Policy{
		{"default-src", "'self'"},
		{"script-src", "'self'", "'unsafe-inline'"},
		{"style-src", "'self'", "'unsafe-inline'"},
		{"img-src", "'self'", "data:"},
		{"font-src", "'self'", "data:"},
		{"connect-src", "'self'"},
		{"frame-ancestors", "'none'"},
		{"base-uri", "'self'"},
		{"object-src", "'none'"},
	}
}

// SecurityHeaders sets nosniff, a no-referrer policy and a CSP on every
// response. Paths under /swagger/ get SwaggerUIPolicy, the rest StrictPolicy.
func SecurityHeaders() func(http.Handler) http.Handler {
	strict := StrictPolicy().String()
	swagger := SwaggerUIPolicy().String()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "no-referrer")
			if strings.HasPrefix(r.URL.Path, "/swagger/") {
				h.Set("Content-Security-Policy", swagger)
			} else {
				h.Set("Content-Security-Policy", strict)
			}
			next.ServeHTTP(w, r)
		})
	}
}
