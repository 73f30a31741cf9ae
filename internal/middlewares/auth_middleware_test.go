package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		id, _ := c.Get("adminID")
		role, _ := c.Get("adminRole")
		c.JSON(200, gin.H{
			"adminID":      id,
			"adminRole":    role,
			"reached_next": true,
		})
	})
	return r
}

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func doReq(r *gin.Engine, token string, setHeader bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	if setHeader {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader_401(t *testing.T) {
	r := newTestRouter(t)

	w := doReq(r, "", false)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Missing bearer token") {
		t.Fatalf("expected Missing bearer token, got %s", w.Body.String())
	}
}

func TestAuthMiddleware_InvalidToken_401(t *testing.T) {
	r := newTestRouter(t)

	w := doReq(r, "not-a-jwt", true)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Invalid or expired token") {
		t.Fatalf("expected Invalid or expired token, got %s", w.Body.String())
	}
}

func TestAuthMiddleware_WrongSecret_401(t *testing.T) {
	r := newTestRouter(t)

	token := signHS256(t, "other-secret", jwt.MapClaims{
		"admin_id": 1,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(r, token, true)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_ExpiredToken_401(t *testing.T) {
	r := newTestRouter(t)

	token := signHS256(t, "test-secret", jwt.MapClaims{
		"admin_id": 1,
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	w := doReq(r, token, true)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_ValidToken_SetsContext(t *testing.T) {
	r := newTestRouter(t)

	token := signHS256(t, "test-secret", jwt.MapClaims{
		"admin_id": float64(42),
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(r, token, true)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body["reached_next"] != true {
		t.Fatalf("expected reached_next true, got %#v", body["reached_next"])
	}
	if body["adminID"] != float64(42) {
		t.Fatalf("expected adminID 42, got %#v", body["adminID"])
	}
	if body["adminRole"] != "admin" {
		t.Fatalf("expected adminRole admin, got %#v", body["adminRole"])
	}
}

func TestAuthMiddleware_MissingAdminID_401(t *testing.T) {
	r := newTestRouter(t)

	token := signHS256(t, "test-secret", jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := doReq(r, token, true)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "invalid admin ID") {
		t.Fatalf("expected invalid admin ID, got %s", w.Body.String())
	}
}
