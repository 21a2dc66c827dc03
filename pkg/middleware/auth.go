package middleware

import (
	"errors"
	"net/http"
	"strings"

	"doctor-appointment/pkg/token"
	"doctor-appointment/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer token (signature, expiry, revocation)
// and stores account id, role and the raw token in the request context.
func Authenticate(tokens *token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			rawToken := parts[1]

			claims, err := tokens.Verify(r.Context(), rawToken)
			if err != nil {
				switch {
				case errors.Is(err, token.ErrTokenExpired):
					logger.Warn("Expired token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Token expired")
				case errors.Is(err, token.ErrTokenRevoked):
					logger.Warn("Revoked token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Token revoked")
				case errors.Is(err, token.ErrTokenInvalid):
					logger.Warn("Invalid token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Invalid token")
				default:
					logger.Error("Failed to verify token", zap.Error(err))
					utils.ResponseInternalError(w, "Internal server error")
				}
				return
			}

			accountID, err := claims.AccountID()
			if err != nil {
				logger.Warn("Token subject is not a valid account ID", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetAccountContext(r.Context(), accountID, claims.Role)
			ctx = utils.SetTokenContext(ctx, rawToken)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated requests whose role claim is not one
// of the allowed roles. Must run after Authenticate.
func RequireRole(logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if _, ok := allowed[role]; !ok {
				logger.Warn("Role not allowed for route",
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
