package public

import "github.com/resto-next/internal/provider"

// Handler 前台接口处理器入口
// 说明：该处理器仅用于访客侧 API（菜单、购物车、下单、评价）。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
