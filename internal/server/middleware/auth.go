// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// emailKey is the context key for storing the authenticated account email.
const emailKey ContextKey = "email"

// TokenValidator is an interface for validating session tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (EmailGetter, error)
}

// EmailGetter extracts the account email from token claims.
type EmailGetter interface {
	GetEmail() string
}

// AuthMiddleware creates middleware that validates bearer tokens and adds the
// account email to the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" is matched case-insensitively
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			email := claims.GetEmail()
			if email == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), email)))
		})
	}
}

// WithEmail returns a copy of ctx carrying the authenticated email.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmail extracts the authenticated account email from the request context.
func GetEmail(r *http.Request) (string, error) {
	email, ok := r.Context().Value(emailKey).(string)
	if !ok || email == "" {
		return "", fmt.Errorf("email not found in request context")
	}
	return email, nil
}
