package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-jobs-api/internal/core/auth"
)

func newAuthRouter(t *testing.T, jwter *auth.JWTer, demoID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", AuthJWT(jwter, demoID), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.GetString(KeyUserID),
			"userName": c.GetString(KeyUserName),
			"testUser": c.GetBool(KeyTestUser),
		})
	})
	return r
}

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("s3cr3t"), Issuer: "jobs-api", TTL: time.Hour}
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	r := newAuthRouter(t, testJWTer(), "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthJWT_MalformedToken(t *testing.T) {
	r := newAuthRouter(t, testJWTer(), "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthJWT_NoBearerPrefix(t *testing.T) {
	j := testJWTer()
	tok, err := j.Issue("u-1", "john")
	require.NoError(t, err)

	r := newAuthRouter(t, j, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", tok) // 缺 "Bearer "
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthJWT_ValidToken(t *testing.T) {
	j := testJWTer()
	tok, err := j.Issue("u-1", "john")
	require.NoError(t, err)

	r := newAuthRouter(t, j, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"u-1"`)
	assert.Contains(t, w.Body.String(), `"userName":"john"`)
	assert.Contains(t, w.Body.String(), `"testUser":false`)
}

func TestAuthJWT_DemoAccountFlag(t *testing.T) {
	j := testJWTer()
	tok, err := j.Issue("demo-user", "demo")
	require.NoError(t, err)

	r := newAuthRouter(t, j, "demo-user")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"testUser":true`)
}
