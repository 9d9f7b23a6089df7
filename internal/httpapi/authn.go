package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"idgate.org/internal/audit"
	"idgate.org/internal/identity"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

var publicPaths = []string{
	"/api/users",
	"/api/login",
	"/metrics",
	"/healthz",
	"/readyz",
	"/v1/info",
	"/",
}

// withAuth gates protected routes: it extracts the bearer token, verifies it,
// confirms the subject account still exists and attaches the identity to the
// request context. Requests failing any step never reach the handler.
func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r.Header.Get(authHeader))
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, "missing bearer token")
			return
		}

		sum, err := a.identity.AuthenticateToken(r.Context(), token)
		if err != nil {
			_ = audit.LogEvent(r.Context(), "identity.token.rejected", map[string]any{
				"path": r.URL.Path,
			})
			switch {
			case errors.Is(err, identity.ErrExpiredToken):
				writeError(w, r, http.StatusUnauthorized, "token expired")
			case errors.Is(err, identity.ErrInvalidToken):
				writeError(w, r, http.StatusUnauthorized, "invalid token")
			case errors.Is(err, identity.ErrUnauthorized):
				writeError(w, r, http.StatusUnauthorized, "unauthorized")
			default:
				writeError(w, r, http.StatusInternalServerError, "authentication error")
			}
			return
		}

		ctx := identity.ContextWithAccount(r.Context(), sum)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", identity.ErrMissingToken
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return "", identity.ErrMissingToken
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", identity.ErrMissingToken
	}
	return token, nil
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}
