package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/viann980/Jadwal-Integrasi-ai/config"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/repository"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/summarizer"
)

// Clock 返回当前墙上时间，测试时可替换
type Clock func() time.Time

// Service 所有 Service 的聚合入口
type Service struct {
	Query     ScheduleQueryService
	Lateness  LatenessService
	Dashboard DashboardService
	Chat      ChatService
	Export    ExportService
}

// NewService 创建 Service 聚合；sum 为 nil 时对话只使用本地摘要
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	sum summarizer.Summarizer,
	logger *zap.Logger,
) *Service {
	loc := cfg.App.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	query := NewScheduleQueryService(repo, logger)
	lateness := NewLatenessService(repo, cfg.Prediction.Threshold, logger)

	return &Service{
		Query:     query,
		Lateness:  lateness,
		Dashboard: NewDashboardService(repo, query, lateness, clock, cfg.App.DefaultStudentID, logger),
		Chat:      NewChatService(query, sum, cfg.AI.Timeout, clock, logger),
		Export:    NewExportService(query, clock, cfg.App.DefaultStudentID, logger),
	}
}
