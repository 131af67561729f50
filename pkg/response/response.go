package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 错误响应结构
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NotFoundPayload "未找到"类结果，作为正常数据返回给前端而非异常
type NotFoundPayload struct {
	Found   bool   `json:"found"`
	Message string `json:"message"`
}

// ── 成功响应 ──

// OK 200 成功响应，直接输出业务数据（前端按接口文档解析，不做统一包裹）
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Attachment 200 文件下载响应
func Attachment(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpStatus int, code int, message, details string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// NotFound 404，输出 {found:false, message}
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, NotFoundPayload{Found: false, Message: message})
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, 10004, "Terlalu banyak permintaan, coba lagi nanti.")
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, 50000, "Terjadi kesalahan pada server.")
}
