package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/dto"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/service"
	"github.com/viann980/Jadwal-Integrasi-ai/pkg/response"
)

// ChatHandler 自由文本课表查询 HTTP 处理器
type ChatHandler struct {
	chatSvc service.ChatService
}

// NewChatHandler 创建 ChatHandler
func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// Ask 解析自由文本并返回助手消息
// POST /api/v1/schedule-chat
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.ChatRequest
	// 请求体缺失或格式错误时按空请求处理，返回今日课表
	if err := c.ShouldBindJSON(&req); err != nil {
		req = dto.ChatRequest{}
	}

	resp, err := h.chatSvc.Ask(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

// Usage 返回接口用法说明
// GET /api/v1/schedule-chat
func (h *ChatHandler) Usage(c *gin.Context) {
	response.OK(c, dto.ChatUsageResponse{Status: "ok", Usage: service.ChatUsage})
}
