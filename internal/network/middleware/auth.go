package middleware

import (
	"net/http"

	"github.com/denmor86/blinds-loyalty/internal/helpers"
	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/network/handlers"
	"github.com/go-chi/jwtauth/v5"
)

// Authenticator - 401 без действительного токена, проверка подписи и срока в jwtauth.Verifier
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin - 403 для пользователей без роли администратора
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := helpers.GetIdentity(r.Context())
		if err != nil {
			handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !identity.IsAdmin() {
			logger.Warn("Admin access denied", identity.Username)
			handlers.WriteError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
