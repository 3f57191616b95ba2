package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-gin-jobs-api/internal/core/cache"
	resp "go-gin-jobs-api/internal/transport/http/response"
)

// RateLimit 全局令牌桶限速
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			resp.Error(resp.CodeTooManyRequests, "too many requests"))
	}
}

// RateLimitPerIP 每 IP 令牌桶
func RateLimitPerIP(rps rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*rate.Limiter)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		lim, ok := buckets[ip]
		if !ok {
			lim = rate.NewLimiter(rps, burst)
			buckets[ip] = lim
		}
		mu.Unlock()
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			resp.Error(resp.CodeTooManyRequests, "too many requests"))
	}
}

// AuthRateLimit 注册/登录接口限流：每客户端 max 次 / window。
// 有 redis 时用固定窗口计数（多副本口径一致），否则退回进程内令牌桶。
func AuthRateLimit(rdb *cache.Cache, max int, window time.Duration) gin.HandlerFunc {
	if rdb == nil {
		return RateLimitPerIP(rate.Every(window/time.Duration(max)), max)
	}
	return func(c *gin.Context) {
		key := fmt.Sprintf("rl:auth:%s", c.ClientIP())
		n, err := rdb.Hit(c.Request.Context(), key, window)
		if err != nil {
			// redis 不可用时放行，不把限流故障变成登录故障
			c.Next()
			return
		}
		if n > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				resp.Error(resp.CodeTooManyRequests, "too many requests, retry later"))
			return
		}
		c.Next()
	}
}
