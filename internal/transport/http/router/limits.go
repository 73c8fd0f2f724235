package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"go-gin-contacts/internal/core/server"
	mdw "go-gin-contacts/internal/transport/http/middleware"
)

type Limits struct {
	RPS          float64
	Burst        int
	Concurrency  int64
	MaxBodyBytes int64
	Timeout      time.Duration
	PerIP        bool // 后台端口按 IP 限速
}

func DefaultLimits() Limits {
	return Limits{RPS: 200, Burst: 400, Concurrency: 300, MaxBodyBytes: 1 << 20, Timeout: 10 * time.Second}
}

// baseEngine 两个端口共用的中间件与探活/指标路由
func baseEngine(l *zap.Logger, lim Limits) *gin.Engine {
	r := server.NewRouter(l, mdw.PanicEnvelope)

	limiter := mdw.RateLimit(rate.Limit(lim.RPS), lim.Burst)
	if lim.PerIP {
		limiter = mdw.RateLimitPerIP(rate.Limit(lim.RPS), lim.Burst)
	}
	r.Use(
		mdw.RequestID(),
		limiter,
		mdw.ConcurrencyLimit(lim.Concurrency),
		mdw.MaxBodyBytes(lim.MaxBodyBytes),
		mdw.Timeout(lim.Timeout),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
