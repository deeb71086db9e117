package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// next-хендлер отдаёт user_id из контекста или 401
func echoUserID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid, ok := GetUserIDFromContext(r.Context()); ok {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(strconv.FormatInt(uid, 10)))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
}

// Тест: SetLoginCookie + WithAuth, user_id попадает в контекст
func TestWithAuth_ValidCookieSetsUserID(t *testing.T) {
	const secret = "test-secret"
	h := WithAuth(secret)(echoUserID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rrCookie := httptest.NewRecorder()
	if _, err := SetLoginCookie(rrCookie, 77, secret); err != nil {
		t.Fatalf("SetLoginCookie: %v", err)
	}
	for _, c := range rrCookie.Result().Cookies() {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "77" {
		t.Fatalf("expected 200 with user 77, got %d %q", rr.Code, rr.Body.String())
	}
}

// Тест: Bearer-токен в заголовке тоже принимается
func TestWithAuth_BearerHeader(t *testing.T) {
	const secret = "test-secret"
	token, err := BuildJWTString(5, secret)
	if err != nil {
		t.Fatalf("BuildJWTString: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	WithAuth(secret)(echoUserID()).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "5" {
		t.Fatalf("expected 200 with user 5, got %d %q", rr.Code, rr.Body.String())
	}
}

// Тест: без cookie user_id не устанавливается
func TestWithAuth_NoCookieLeavesAnonymous(t *testing.T) {
	h := WithAuth("any-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set without cookie")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: при невалидном токене user_id не устанавливается
func TestWithAuth_InvalidToken(t *testing.T) {
	// Сгенерируем cookie с секретом A, а проверять будем секретом B
	rrCookie := httptest.NewRecorder()
	_, _ = SetLoginCookie(rrCookie, 5, "secret-A")

	h := WithAuth("secret-B")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set with invalid token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rrCookie.Result().Cookies() {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestParseUserID_ExpiredAndWrongAlg(t *testing.T) {
	const secret = "s"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
		UserID:           1,
	})
	s, _ := expired.SignedString([]byte(secret))
	if _, err := ParseUserID(s, secret); err == nil {
		t.Fatalf("expired token must be rejected")
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1})
	s, _ = none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := ParseUserID(s, secret); err == nil {
		t.Fatalf("alg none must be rejected")
	}

	if _, err := ParseUserID("garbage", secret); err == nil {
		t.Fatalf("garbage must be rejected")
	}
}
