package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"gloriaeMusica/internal/lib/api/response"
	"gloriaeMusica/internal/lib/token"
	"gloriaeMusica/internal/models"

	"github.com/go-chi/render"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
)

// UserID returns the authenticated user id from the request context.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Role returns the authenticated user's role from the request context.
func Role(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

// IsAdmin reports whether the request context carries the admin role.
func IsAdmin(ctx context.Context) bool {
	role, ok := Role(ctx)
	return ok && role == models.RoleAdmin
}

// New validates the Bearer token and stores the principal in the request
// context. Requests without a valid token get 401 and never reach the handler.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing authorization header"))
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid authorization format"))
				return
			}

			claims, err := token.Verify(secret, strings.TrimSpace(header[len(prefix):]))
			if err != nil {
				log.Debug("token rejected", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
			ctx = context.WithValue(ctx, roleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// Optional decodes the Bearer token when one is present and passes the
// request through either way. Handlers that behave differently for admins
// use it on otherwise public routes.
func Optional(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			const prefix = "Bearer "
			if strings.HasPrefix(header, prefix) {
				if claims, err := token.Verify(secret, strings.TrimSpace(header[len(prefix):])); err == nil {
					ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
					ctx = context.WithValue(ctx, roleKey, claims.Role)
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// RequireAdmin rejects authenticated requests whose principal is not an admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("admin role required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithPrincipal injects a principal into a context. Intended for tests.
func WithPrincipal(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}
