package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasAuthCookie(rr *httptest.ResponseRecorder) bool {
	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return true
		}
	}
	return false
}

func TestUser_RegisterLogin(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/user/register", map[string]string{"login": "john", "password": "p"}, 0)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, hasAuthCookie(rr), "Set-Cookie auth_token expected")
	assert.NotEmpty(t, decode[map[string]string](t, rr)["token"])

	rr = env.do(t, http.MethodPost, "/api/user/register", map[string]string{"login": "john", "password": "p"}, 0)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = env.do(t, http.MethodPost, "/api/user/login", map[string]string{"login": "john", "password": "p"}, 0)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, hasAuthCookie(rr))
	token := decode[map[string]string](t, rr)["token"]

	// токен из тела работает как Bearer
	req := httptest.NewRequest(http.MethodGet, "/api/qr", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	out := httptest.NewRecorder()
	env.router.ServeHTTP(out, req)
	assert.Equal(t, http.StatusOK, out.Code)

	rr = env.do(t, http.MethodPost, "/api/user/login", map[string]string{"login": "john", "password": "bad"}, 0)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = env.do(t, http.MethodPost, "/api/user/login", map[string]string{"login": "ghost", "password": "x"}, 0)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = env.do(t, http.MethodPost, "/api/user/login", `{"login":""}`, 0)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUser_Status(t *testing.T) {
	env := newTestEnv(t)

	t.Run("anonymous", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/user/test", nil, 0)
		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Result string `json:"result"`
		}
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&body)
		assert.Equal(t, "anonymous", body.Result)
	})

	t.Run("authorized", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/user/test", nil, 77)
		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Result string `json:"result"`
		}
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&body)
		assert.Contains(t, body.Result, "User ID = 77")
	})
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(t, http.MethodGet, "/healthz", nil, 0)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rr)["status"])
}
