package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(ja *jwtauth.JWTAuth) *chi.Mux {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(ja))
		r.Use(AuthRequired(ja))

		r.Get("/mine", func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(session.UserID))
		})

		r.Group(func(r chi.Router) {
			r.Use(HrOrAdminOnly)
			r.Get("/org", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})
	return r
}

func makeToken(t *testing.T, ja *jwtauth.JWTAuth, role string, tokenType string) string {
	t.Helper()
	_, tokenString, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"email":   "e@dayflow.io",
		"role":    role,
		"type":    tokenType,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	return tokenString
}

func get(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := newTestRouter(ja)

	rec := get(router, "/mine", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := newTestRouter(ja)

	token := makeToken(t, ja, string(user.RoleEmployee), "refresh")
	rec := get(router, "/mine", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_ResolvesSession(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := newTestRouter(ja)

	token := makeToken(t, ja, string(user.RoleEmployee), "access")
	rec := get(router, "/mine", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", rec.Body.String())
}

func TestHrOrAdminOnly_RejectsEmployee(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := newTestRouter(ja)

	token := makeToken(t, ja, string(user.RoleEmployee), "access")
	rec := get(router, "/org", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHrOrAdminOnly_AllowsHrAndAdmin(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := newTestRouter(ja)

	for _, role := range []user.Role{user.RoleHR, user.RoleAdmin} {
		token := makeToken(t, ja, string(role), "access")
		rec := get(router, "/org", token)
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}
}

func TestHrOrAdminOnly_UnknownRoleDegradesToEmployee(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	router := newTestRouter(ja)

	// A garbled role claim must never grant elevated access.
	token := makeToken(t, ja, "superuser", "access")
	rec := get(router, "/org", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
