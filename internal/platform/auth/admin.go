package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/FogoReed/anime-app-full/internal/platform/api"
	"github.com/FogoReed/anime-app-full/internal/platform/httpserver"
)

// IsAdmin reports whether the authenticated caller carries role=admin.
func IsAdmin(ctx context.Context) bool {
	role, _ := RoleFromContext(ctx)
	return strings.EqualFold(strings.TrimSpace(role), "admin")
}

// RequireAdmin allows request only if RequireUser already injected role=admin into context.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			api.Forbidden(w, "FORBIDDEN", "Admin role required", httpserver.RequestIDFromContext(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
