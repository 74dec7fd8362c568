package middleware

import (
	"context"
	"net/http"
	"strings"

	"cueron/utils"
)

type ctxKey string

// Context keys populated by AuthMiddleware.
const (
	CtxUserID ctxKey = "userID"
	CtxEmail  ctxKey = "email"
	CtxRole   ctxKey = "role"
)

// AuthMiddleware requires a valid Bearer token and puts the claims on
// the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxEmail, claims.Email)
		ctx = context.WithValue(ctx, CtxRole, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
