package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/camporahq/campora/internal/pkg/session"
)

// SessionCookieName is the cookie carrying the session token for browser clients.
const SessionCookieName = "campora_session"

func middlewareAuthentication(sessions session.Manager, publicEndpoints map[string]map[string]struct{}) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			token := SessionToken(r)
			if token == "" {
				writeJSON(w, map[string]string{"message": "You must be signed in first"}, http.StatusUnauthorized)
				return
			}

			auth, err := sessions.Current(r.Context(), token)
			if err != nil {
				slog.ErrorContext(r.Context(), "failed to resolve session token", "error", err)
				writeJSON(w, map[string]string{"message": "Internal server error"}, http.StatusInternalServerError)
				return
			}
			if auth == nil {
				writeJSON(w, map[string]string{"message": "You must be signed in first"}, http.StatusUnauthorized)
				return
			}

			ctx := session.SetAuth(r.Context(), auth)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionToken extracts the session token from the Authorization header or,
// for browser clients, the session cookie.
func SessionToken(r *http.Request) string {
	p := strings.Fields(r.Header.Get("Authorization"))
	if len(p) == 2 && strings.EqualFold(p[0], "Bearer") {
		return p[1]
	}

	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}

	return ""
}
