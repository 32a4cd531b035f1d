package shared

import (
	"github.com/resto-next/internal/http/response"
	"github.com/resto-next/internal/i18n"
	"github.com/resto-next/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	appErr := response.NewAppError(code, key, Message(c, key), err)
	logHandlerError(c, appErr)
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondCartError 购物车/下单接口的错误响应：{success:false, message} + HTTP 状态码。
func RespondCartError(c *gin.Context, code int, key string, err error) {
	appErr := response.NewAppError(code, key, Message(c, key), err)
	logHandlerError(c, appErr)
	response.CartFailure(c, response.HTTPStatus(appErr.Code), appErr.Message)
}

// Message 当前请求语言下的提示文案。
func Message(c *gin.Context, key string) string {
	return i18n.T(i18n.ResolveLocale(c), key)
}

func logHandlerError(c *gin.Context, appErr *response.AppError) {
	if !appErr.Internal() {
		return
	}
	RequestLog(c).Errorw("handler_error",
		"code", appErr.Code,
		"key", appErr.Key,
		"path", c.FullPath(),
		"error", appErr.Err,
	)
}
