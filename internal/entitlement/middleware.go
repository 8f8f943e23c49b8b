package entitlement

import (
	"net/http"

	"github.com/eod-app/eod-lambda/internal/config"
)

// Middleware blocks the journal surface when neither a subscription nor
// trial days remain.
func Middleware(service Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			hasAccess, err := service.HasAccess(r.Context())
			if err != nil {
				log.WithError(err).Error("Failed to check entitlement")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if !hasAccess {
				http.Error(w, "subscription required", http.StatusPaymentRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
