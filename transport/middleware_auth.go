package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	authapp "github.com/heystay/booking-api/application/auth"
	"github.com/heystay/booking-api/constant"
	utilsContext "github.com/heystay/booking-api/utils/context"
	"github.com/heystay/booking-api/utils/errors"
	"github.com/heystay/booking-api/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware returns a middleware that guards every mutating route with
// bearer-token verification. Reads are public; a missing header is 401, a
// token that fails verification is 403.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, errors.SetCustomError(constant.ErrMissingToken))
				return
			}

			// The header value is the token itself, optionally carrying the
			// Bearer prefix.
			token := authHeader
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}

			identity, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Error("Error verifying token", zap.String("error", err.Error()))
				writeError(w, errors.SetCustomError(constant.ErrInvalidToken))
				return
			}

			logger.Debug("Verified token payload",
				zap.String("userId", identity.UserID),
				zap.String("username", identity.Username),
			)

			ctx := utilsContext.WithIdentity(r.Context(), identity.UserID, identity.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRoute: every read is public, as are login and the swagger UI.
// Create/update/delete on any resource require a token.
func isPublicRoute(method, path string) bool {
	if method == http.MethodGet {
		return true
	}
	return path == "/login"
}
