package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/dto"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/service"
	"github.com/viann980/Jadwal-Integrasi-ai/pkg/response"
)

// ScheduleHandler 看板 HTTP 处理器
type ScheduleHandler struct {
	dashboardSvc service.DashboardService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(dashboardSvc service.DashboardService) *ScheduleHandler {
	return &ScheduleHandler{dashboardSvc: dashboardSvc}
}

// GetDashboard 查询学生当前课与下一节课
// GET /api/v1/schedule?studentId=NIM001&now=08:30
func (h *ScheduleHandler) GetDashboard(c *gin.Context) {
	var req dto.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 20001, "Parameter tidak valid.")
		return
	}

	resp, err := h.dashboardSvc.GetDashboard(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, "Mahasiswa tidak ditemukan.")
	case errors.Is(err, service.ErrInvalidTime):
		response.BadRequest(c, 20002, "Format waktu tidak valid, gunakan HH:MM atau RFC3339.")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
