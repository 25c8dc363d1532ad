package middleware

import (
	"net/http"

	"video-rental/pkg/utils"

	"go.uber.org/zap"
)

// TokenHeader is the custom header carrying the signed auth token.
// The API predates bearer auth and clients still send this header.
const TokenHeader = "x-auth-token"

// Auth validates the x-auth-token header and puts the caller identity
// on the request context. Missing header is 401, bad token is 400.
func Auth(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				utils.ResponseUnauthorized(w, "Access denied. No token provided.")
				return
			}

			claims, err := utils.ParseAuthToken(secret, token)
			if err != nil {
				logger.Warn("Invalid auth token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseBadRequest(w, "Invalid token.", nil)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.IsAdmin)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin rejects callers whose token does not carry the admin flag.
// Must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
				utils.ResponseUnauthorized(w, "Access denied. No token provided.")
				return
			}

			if !utils.GetIsAdminFromContext(r.Context()) {
				logger.Warn("Non-admin access attempt",
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Access denied.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
