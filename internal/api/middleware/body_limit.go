package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/viann980/Jadwal-Integrasi-ai/pkg/response"
)

// BodyLimit 请求体大小限制中间件
// 声明长度超限直接 413；未声明长度的请求体读取时截断，后续解析失败按空请求处理
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Ukuran permintaan terlalu besar.")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
