package shared

import (
	"strings"

	"github.com/resto-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SessionContextKey 会话中间件写入 gin 上下文的 key
const SessionContextKey = "session_key"

// GetSessionKey 读取当前访客会话 key；缺失时直接写出错误响应。
func GetSessionKey(c *gin.Context) (string, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		RespondCartError(c, response.CodeBadRequest, "error.session_required", nil)
		return "", false
	}
	key, ok := value.(string)
	if !ok || strings.TrimSpace(key) == "" {
		RespondCartError(c, response.CodeBadRequest, "error.session_required", nil)
		return "", false
	}
	return key, true
}
