package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/capdigital/capsite-api/internal/entity"
	"github.com/capdigital/capsite-api/internal/infra/session"
)

type contextKey string

const userContextKey contextKey = "current_user"

// UserFinder resolves a decoded token back to an operator account. The lookup
// happens on every request; at this traffic there is no need for a cache.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// RequireAuth gates the admin endpoints: no cookie, undecodable token or an
// account that no longer exists all come back as 401 without touching the
// wrapped handler.
func RequireAuth(codec *session.Codec, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			claims, err := codec.Decode(cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.FindByID(r.Context(), claims.UserID)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the operator resolved by RequireAuth, or nil when
// the request never went through the gate.
func UserFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userContextKey).(*entity.User)
	return user
}

func unauthorized(w http.ResponseWriter) {
	RecordAuthFailure()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Não autorizado"})
}
