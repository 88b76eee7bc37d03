package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"pyquest/internal/models"
	"pyquest/internal/security"
	"pyquest/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	AccountContextKey ContextKey = "account"
	SessionContextKey ContextKey = "sessionID"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService *service.AuthService
	rateLimiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService) *Middleware {
	return &Middleware{
		authService: authService,
		rateLimiter: security.NewRateLimiter(10, time.Minute),
	}
}

// RequireAuth resolves the current account from the session cookie or a
// Bearer token and injects it into the request context
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, sessionID := m.resolveAccount(r)
		if account == nil {
			respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), AccountContextKey, account)
		ctx = context.WithValue(ctx, SessionContextKey, sessionID)
		next(w, r.WithContext(ctx))
	}
}

func (m *Middleware) resolveAccount(r *http.Request) (*models.Account, string) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if account, err := m.authService.ValidateSession(cookie.Value); err == nil {
			return account, cookie.Value
		}
	}

	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token := strings.TrimPrefix(auth, "Bearer ")
		if account, sessionID, err := m.authService.ValidateToken(token); err == nil {
			return account, sessionID
		}
	}

	return nil, ""
}

// RateLimit limits requests per client IP; used on login and signup
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.rateLimiter.Allow(security.GetClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
			return
		}
		next(w, r)
	}
}

// GetAccountFromContext retrieves the authenticated account, or nil
func GetAccountFromContext(ctx context.Context) *models.Account {
	account, _ := ctx.Value(AccountContextKey).(*models.Account)
	return account
}

// GetSessionFromContext retrieves the current session id, or ""
func GetSessionFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(SessionContextKey).(string)
	return sessionID
}

// Logging wraps a handler with request logging
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
