package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/dto"
	"github.com/viann980/Jadwal-Integrasi-ai/internal/service"
	"github.com/viann980/Jadwal-Integrasi-ai/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSchedule 导出学生课表
// GET /api/v1/export?studentId=NIM001&format=csv
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 30001, "Parameter tidak valid.")
		return
	}

	file, err := h.exportSvc.Export(c.Request.Context(), req.StudentID, req.Format)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, file.ContentType, file.Filename, file.Body)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, "Mahasiswa tidak ditemukan.")
	case errors.Is(err, service.ErrUnknownExportFormat):
		response.BadRequest(c, 30002, "Format ekspor tidak didukung, gunakan csv, xlsx atau ics.")
	case errors.Is(err, service.ErrExportGenerateFail):
		_ = c.Error(err)
		response.ErrorWithDetails(c, 500, 30003, "Gagal membuat file ekspor.", err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
