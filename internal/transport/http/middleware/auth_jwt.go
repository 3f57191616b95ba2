package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-gin-jobs-api/internal/core/auth"
	resp "go-gin-jobs-api/internal/transport/http/response"
)

// context 键，下游 handler 按这些取身份
const (
	KeyUserID   = "userId"
	KeyUserName = "userName"
	KeyTestUser = "testUser" // 只读演示账号标记
)

// AuthJWT 解析 Bearer token 并把身份挂到 context；
// demoUserID 命中时打上 testUser 标记，写操作据此拒绝。
func AuthJWT(j *auth.JWTer, demoUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUserName, claims.Name)
		c.Set(KeyTestUser, demoUserID != "" && claims.UserID == demoUserID)
		c.Next()
	}
}
