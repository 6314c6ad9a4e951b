package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRedirectsByRole(t *testing.T) {
	r, _ := setupRouterForTest(t, testConfig(t))

	tests := []struct {
		username string
		password string
		location string
	}{
		{"admin", "adminpass", "/admin"},
		{"operator", "operatorpass", "/operator"},
		{"customer", "customerpass", "/customer"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, postForm("/login", url.Values{"username": {tt.username}, "password": {tt.password}}))

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
			assert.NotNil(t, sessionCookie(w))
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	r, _ := setupRouterForTest(t, testConfig(t))

	for _, form := range []url.Values{
		{"username": {"admin"}, "password": {"wrong"}},
		{"username": {"nobody"}, "password": {"adminpass"}},
		{"username": {""}, "password": {""}},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, postForm("/login", form))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username or password")
		assert.Nil(t, sessionCookie(w))
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	r, _ := setupRouterForTest(t, testConfig(t))
	session := login(t, r, "customer", "customerpass")

	w := do(r, httptest.NewRequest(http.MethodGet, "/customer", nil), session)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/logout", nil), session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// the old token no longer authenticates
	w = do(r, httptest.NewRequest(http.MethodGet, "/customer", nil), session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLogoutWithoutSession(t *testing.T) {
	r, _ := setupRouterForTest(t, testConfig(t))

	w := do(r, httptest.NewRequest(http.MethodGet, "/logout", nil), nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRoleGuards(t *testing.T) {
	r, _ := setupRouterForTest(t, testConfig(t))
	customer := login(t, r, "customer", "customerpass")
	operator := login(t, r, "operator", "operatorpass")

	tests := []struct {
		name    string
		req     *http.Request
		session *http.Cookie
	}{
		{"customer on operator page", httptest.NewRequest(http.MethodGet, "/operator", nil), customer},
		{"customer on admin page", httptest.NewRequest(http.MethodGet, "/admin", nil), customer},
		{"operator places order", postForm("/customer_order", url.Values{"customer_name": {"x"}}), operator},
		{"anonymous closes order", postForm("/close_order/1", nil), nil},
		{"anonymous reviews", httptest.NewRequest(http.MethodGet, "/customer_review", nil), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.req, tt.session)
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/login", w.Header().Get("Location"))
		})
	}
}

func TestPublicPages(t *testing.T) {
	r, _ := setupRouterForTest(t, testConfig(t))

	for _, path := range []string{"/", "/about", "/menu", "/login", "/ping"} {
		w := do(r, httptest.NewRequest(http.MethodGet, path, nil), nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
