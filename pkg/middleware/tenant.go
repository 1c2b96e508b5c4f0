package middleware

import (
	"net/http"

	"github.com/vfg2006/traffic-crm-reporting/pkg/apiErrors"
	"github.com/vfg2006/traffic-crm-reporting/pkg/log"
)

// RequireTenant restringe a rota a tokens que carregam um tenant.
// Só faz sentido depois do AuthMiddleware.
func RequireTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user not authenticated", nil)
				return
			}

			if claims.TenantID == "" {
				log.ForContext(r.Context()).WithField("user_id", claims.UserID).Warn("Token sem tenant associado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "token has no tenant", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
