package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/viann980/Jadwal-Integrasi-ai/config"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/api/handler"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时对话接口不限流
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 看板：当前课 / 下一节课
		v1.GET("/schedule", h.Schedule.GetDashboard)

		// 自由文本查询（可能调用外部摘要服务，单独限流）
		chat := v1.Group("/schedule-chat")
		{
			chat.GET("", h.Chat.Usage)
			chat.POST("", middleware.RateLimit(limiter, cfg.Redis.RateLimit, cfg.Redis.RateWindow), h.Chat.Ask)
		}

		// 导出：csv（默认）/ xlsx / ics
		v1.GET("/export", h.Export.ExportSchedule)
	}

	return r
}
