package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, c claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, c).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(sub, role string) claims {
	return claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    "hojadevida",
			Audience:  jwt.ClaimStrings{"web"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: role,
	}
}

func newEngine(cfg JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := r.Group("/", JWTAuth(cfg))
	auth.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")})
	})
	auth.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	cfg := JWTConfig{Secret: testSecret, Issuer: "hojadevida", Audience: "web"}
	r := newEngine(cfg)

	expired := validClaims("u1", "")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongAud := validClaims("u1", "")
	wrongAud.Audience = jwt.ClaimStrings{"mobile"}

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims("u1", "")), http.StatusUnauthorized},
		{"wrong method", sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("u1", "")), http.StatusUnauthorized},
		{"expired", sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired), http.StatusUnauthorized},
		{"wrong audience", sign(t, jwt.SigningMethodHS256, []byte(testSecret), wrongAud), http.StatusUnauthorized},
		{"no subject", sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("", "")), http.StatusUnauthorized},
		{"ok", sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u1", "")), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/me", tt.token)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"u1","role":"user"}`, w.Body.String())
			}
		})
	}
}

func TestJWTAuth_NoSecret(t *testing.T) {
	r := newEngine(JWTConfig{})
	w := get(r, "/me", "anything")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := newEngine(JWTConfig{Secret: testSecret})

	user := sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u1", ""))
	assert.Equal(t, http.StatusForbidden, get(r, "/admin", user).Code)

	admin := sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u9", "Admin"))
	assert.Equal(t, http.StatusOK, get(r, "/admin", admin).Code)
}
