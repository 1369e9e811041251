package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/crewmart/pkg/utils"
)

type ContextKey string

const (
	IdentityKey ContextKey = "identity"
	RoleKey     ContextKey = "role"
)

type Middleware struct {
	jwtService JWTServiceInterface
}

func NewMiddleware(jwtService JWTServiceInterface) *Middleware {
	return &Middleware{jwtService: jwtService}
}

func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, claims.Identity)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role, _ := r.Context().Value(RoleKey).(Role); role != RoleAdmin {
			utils.RespondWithCode(w, http.StatusForbidden, "ADMIN_REQUIRED", "administrator role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Identity returns the authenticated chat identity, zero when absent.
func Identity(ctx context.Context) int64 {
	identity, _ := ctx.Value(IdentityKey).(int64)
	return identity
}
