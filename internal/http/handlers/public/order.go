package public

import (
	"errors"
	"net/http"

	handlershared "github.com/resto-next/internal/http/handlers/shared"
	"github.com/resto-next/internal/http/response"
	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	Notes           string `json:"notes"`
}

// OrderConfirmation 订单确认页数据
type OrderConfirmation struct {
	*models.Order
	StatusLabel  string   `json:"status_label"`
	SummaryLines []string `json:"summary_lines"`
}

func newOrderConfirmation(order *models.Order) OrderConfirmation {
	return OrderConfirmation{
		Order:        order,
		StatusLabel:  service.OrderStatusLabel(order.Status),
		SummaryLines: service.OrderSummaryLines(order),
	}
}

// PlaceOrder 结算下单；成功后购物车清空
func (h *Handler) PlaceOrder(c *gin.Context) {
	sessionKey, ok := handlershared.GetSessionKey(c)
	if !ok {
		return
	}
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondCartError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.PlaceOrder(sessionKey, service.PlaceOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		respondCartError(c, err, "error.order_create_failed")
		return
	}
	// cart_total/cart_count 描述下单后的购物车（已清空），订单总价在 data 中
	summary, err := h.CartService.Summary(sessionKey)
	if err != nil {
		handlershared.RequestLog(c).Warnw("cart_summary_after_order_failed", "order_id", order.ID, "error", err)
		summary = &service.CartSummary{Total: models.ZeroMoney()}
	}
	response.CartSuccessWithStatus(c, http.StatusCreated, handlershared.Message(c, "success.order_placed"), summary.Total, summary.Count, newOrderConfirmation(order))
}

// GetOrder 订单确认页：仅限下单会话查看
func (h *Handler) GetOrder(c *gin.Context) {
	sessionKey, ok := handlershared.GetSessionKey(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseID(c.Param("id"))
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.GetOrderForSession(sessionKey, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.Success(c, newOrderConfirmation(order))
}
