package public

import (
	handlershared "github.com/resto-next/internal/http/handlers/shared"
	"github.com/resto-next/internal/http/response"
	"github.com/resto-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddProductRequest 加入菜品请求；quantity 缺省为 1
type AddProductRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// AddSpecialMealRequest 加入定制套餐请求
type AddSpecialMealRequest struct {
	SpecialMealID uint                          `json:"special_meal_id" binding:"required"`
	Quantity      *int                          `json:"quantity"`
	Ingredients   []service.IngredientSelection `json:"ingredients"`
	Notes         string                        `json:"notes"`
}

// UpdateLineRequest 修改行数量请求
type UpdateLineRequest struct {
	Quantity int `json:"quantity"`
}

func quantityOrDefault(quantity *int) int {
	if quantity == nil {
		return 1
	}
	return *quantity
}

// GetCart 购物车详情
func (h *Handler) GetCart(c *gin.Context) {
	sessionKey, ok := handlershared.GetSessionKey(c)
	if !ok {
		return
	}
	detail, err := h.CartService.GetCartDetail(sessionKey)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, detail)
}

// AddProduct 加入菜品
func (h *Handler) AddProduct(c *gin.Context) {
	sessionKey, ok := handlershared.GetSessionKey(c)
	if !ok {
		return
	}
	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondCartError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	summary, err := h.CartService.AddProduct(sessionKey, req.ProductID, quantityOrDefault(req.Quantity))
	if err != nil {
		respondCartError(c, err, "error.cart_update_failed")
		return
	}
	respondCartSummary(c, "success.product_added", summary, nil)
}

// AddSpecialMeal 加入定制套餐
func (h *Handler) AddSpecialMeal(c *gin.Context) {
	sessionKey, ok := handlershared.GetSessionKey(c)
	if !ok {
		return
	}
	var req AddSpecialMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondCartError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	summary, err := h.CartService.AddCustomizedMeal(sessionKey, service.AddCustomizedMealInput{
		SpecialMealID: req.SpecialMealID,
		Quantity:      quantityOrDefault(req.Quantity),
		Selections:    req.Ingredients,
		Notes:         req.Notes,
	})
	if err != nil {
		respondCartError(c, err, "error.cart_update_failed")
		return
	}
	respondCartSummary(c, "success.special_meal_added", summary, nil)
}

// UpdateCartLine 修改行数量；数量小于 1 返回 400，不会删除行
func (h *Handler) UpdateCartLine(c *gin.Context) {
	sessionKey, ok := handlershared.GetSessionKey(c)
	if !ok {
		return
	}
	lineID, ok := handlershared.ParseID(c.Param("id"))
	if !ok {
		handlershared.RespondCartError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var req UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondCartError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	summary, err := h.CartService.UpdateLineQuantity(sessionKey, lineID, c.Param("type"), req.Quantity)
	if err != nil {
		respondCartError(c, err, "error.cart_update_failed")
		return
	}
	respondCartSummary(c, "success.cart_updated", summary, nil)
}

// RemoveCartLine 删除行；行不存在时同样返回成功
func (h *Handler) RemoveCartLine(c *gin.Context) {
	sessionKey, ok := handlershared.GetSessionKey(c)
	if !ok {
		return
	}
	lineID, ok := handlershared.ParseID(c.Param("id"))
	if !ok {
		handlershared.RespondCartError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	summary, err := h.CartService.RemoveLine(sessionKey, lineID, c.Param("type"))
	if err != nil {
		respondCartError(c, err, "error.cart_update_failed")
		return
	}
	respondCartSummary(c, "success.cart_line_removed", summary, nil)
}
