package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/pawfinder/adoption-backend/internal/domain"
	"github.com/pawfinder/adoption-backend/internal/service"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

// Auth resolves the bearer token to a current user record. Every failure
// path returns the same opaque body so callers cannot tell a bad token from
// a deleted account.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				unauthenticated(w)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("ERROR [middleware.Auth] invalid authorization header format")
				unauthenticated(w)
				return
			}

			userID, err := authService.VerifyToken(parts[1])
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				unauthenticated(w)
				return
			}

			// The token only proves who the caller was when it was issued;
			// the account has to still exist now.
			user, err := authService.GetUserByID(r.Context(), userID)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] user lookup failed: %v", err)
				unauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Please authenticate."})
}
