package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-gin-jobs-api/internal/core/auth"
	"go-gin-jobs-api/internal/core/cache"
	"go-gin-jobs-api/internal/core/config"
	mdw "go-gin-jobs-api/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, db *gorm.DB, rdb *cache.Cache, jwter *auth.JWTer, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 注册/登录单独限流：10 次 / 15 分钟每客户端
	public := api.Group("/auth")
	public.Use(mdw.AuthRateLimit(rdb,
		cfg.Auth.LoginRateMax,
		time.Duration(cfg.Auth.LoginRateWindowMin)*time.Minute,
	))

	// 鉴权分组（jobs 和档案更新都挂这里）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, cfg.Auth.DemoUserID))

	mountAuthActions(public, authed, db, jwter)
	mountJobActions(authed, db)

	return r
}
