package handler

import "github.com/viann980/Jadwal-Integrasi-ai/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Schedule *ScheduleHandler
	Chat     *ChatHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Schedule: NewScheduleHandler(svc.Dashboard),
		Chat:     NewChatHandler(svc.Chat),
		Export:   NewExportHandler(svc.Export),
	}
}
