package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"golang.org/x/time/rate"
)

// RateLimit limita a frequência de requisições da rota. Há uma única sessão de análise por
// processo, então o limite é global e não por cliente.
// perMinute <= 0 desativa o limite.
func RateLimit(perMinute, burst int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst <= 0 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Warn("Limite de requisições excedido")

				w.Header().Set("Retry-After", "60")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Limite de envios excedido, tente novamente em instantes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
