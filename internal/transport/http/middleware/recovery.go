package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "go-gin-contacts/internal/transport/http/response"
)

// PanicEnvelope 配合 ginzap.CustomRecoveryWithZap：日志由 ginzap 打，这里只负责响应体
func PanicEnvelope(c *gin.Context, _ any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, ""))
}
