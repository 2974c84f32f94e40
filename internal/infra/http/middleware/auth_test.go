package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/capdigital/capsite-api/internal/entity"
	"github.com/capdigital/capsite-api/internal/infra/http/middleware"
	"github.com/capdigital/capsite-api/internal/infra/session"
)

type fakeUserFinder struct {
	users map[string]*entity.User
}

func (f *fakeUserFinder) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, entity.ErrUserNotFound
}

func newGate(t *testing.T) (*session.Codec, func(http.Handler) http.Handler) {
	t.Helper()
	codec := session.NewCodec("test-secret", time.Hour)
	finder := &fakeUserFinder{users: map[string]*entity.User{
		"user-1": {ID: "user-1", Email: "admin@example.com", Name: "Admin", Role: "admin"},
	}}
	return codec, middleware.RequireAuth(codec, finder)
}

func protected(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFromContext(r.Context())
		assert.NotNil(t, user)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthNoCookie(t *testing.T) {
	_, gate := newGate(t)

	rec := httptest.NewRecorder()
	gate(protected(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Não autorizado"}`, rec.Body.String())
}

func TestRequireAuthBadToken(t *testing.T) {
	_, gate := newGate(t)

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})

	rec := httptest.NewRecorder()
	gate(protected(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthUnknownUser(t *testing.T) {
	codec, gate := newGate(t)

	// Token assinado corretamente, mas a conta não existe mais.
	token, err := codec.Encode("deleted-user", "ghost@example.com")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})

	rec := httptest.NewRecorder()
	gate(protected(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthResolvesUser(t *testing.T) {
	codec, gate := newGate(t)

	token, err := codec.Encode("user-1", "admin@example.com")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/leads", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})

	rec := httptest.NewRecorder()
	gate(protected(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
