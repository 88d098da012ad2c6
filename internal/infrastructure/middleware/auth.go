package middleware

import (
	"net/http"
	"strings"

	"catalog-admin-core/internal/application"
	"catalog-admin-core/internal/domain"

	"github.com/rs/zerolog"
)

// AdminKeyMiddleware authenticates requests with the X-Admin-Key header,
// resolving the key to a staff account and storing it in the request
// context. Public routes (health, metrics, registration) are skipped.
func AdminKeyMiddleware(adminService *application.AdminService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "/health" ||
				path == "/metrics" ||
				path == "/api/v1/auth/register" {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				http.Error(w, "X-Admin-Key header is required", http.StatusUnauthorized)
				return
			}

			user, err := adminService.GetByKey(r.Context(), key)
			if err != nil {
				logger.Warn().Err(err).Msg("Rejected request with unknown admin key")
				http.Error(w, "Invalid admin key", http.StatusUnauthorized)
				return
			}

			ctx := domain.WithUser(r.Context(), user)
			if tenant := strings.TrimSpace(r.Header.Get("X-Tenant")); tenant != "" {
				ctx = domain.WithTenant(ctx, domain.Tenant(tenant))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
