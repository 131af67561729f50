package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/viann980/Jadwal-Integrasi-ai/config"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/api/handler"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/api/middleware"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/api/router"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/repository"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/service"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/summarizer"
	"github.com/viann980/Jadwal-Integrasi-ai/pkg/database"
	applogger "github.com/viann980/Jadwal-Integrasi-ai/pkg/logger"
	"github.com/viann980/Jadwal-Integrasi-ai/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认查找 ./config/config.yaml 或 ./config.yaml）")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log, zap.String("data_source", cfg.Data.Source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("timezone", cfg.App.Timezone),
		zap.Bool("ai_enabled", cfg.AI.Enabled),
	)

	// 3. 课表数据源：内置静态表或 PostgreSQL
	var db *gorm.DB
	repo := repository.NewStaticRepository()
	if cfg.Data.Source == config.DataSourcePostgres {
		db, err = database.NewDB(&cfg.Database, logger)
		if err != nil {
			logger.Fatal("数据库连接失败", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}
		repo = repository.NewRepository(db)
	}

	// 3.1 启动时校验引用完整性，数据有误直接退出
	validateCtx, cancelValidate := context.WithTimeout(context.Background(), 10*time.Second)
	err = repository.Validate(validateCtx, repo)
	cancelValidate()
	if err != nil {
		logger.Fatal("课表数据校验失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，对话接口不限流）
	var rdb *redis.Client
	var limiter middleware.RateLimiter
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，对话接口限流将不可用", zap.Error(err))
			rdb = nil
		} else {
			limiter = rdb
		}
	}

	// 5. 外部摘要（可选：未启用或初始化失败时只使用本地文案）
	var sum summarizer.Summarizer
	if cfg.AI.Enabled {
		g, err := summarizer.NewGenAI(context.Background(), &cfg.AI, logger)
		if err != nil {
			logger.Warn("外部摘要初始化失败，使用本地文案", zap.Error(err))
		} else {
			sum = g
		}
	}

	// 6. 依赖注入: Repository → Service → Handler
	svc := service.NewService(cfg, repo, sum, logger)
	h := handler.NewHandler(svc)

	// 7. 初始化路由
	gin.SetMode(gin.ReleaseMode)
	engine := router.Setup(cfg, h, limiter, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if db != nil {
		if err := database.Close(db); err != nil {
			logger.Warn("关闭数据库连接失败", zap.Error(err))
		}
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
