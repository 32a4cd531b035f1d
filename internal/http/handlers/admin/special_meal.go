package admin

import (
	"github.com/resto-next/internal/http/response"
	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/repository"
	"github.com/resto-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SpecialMealRequest 套餐请求
type SpecialMealRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	BasePrice   models.Money `json:"base_price"`
	IsAvailable bool         `json:"is_available"`
}

func (r SpecialMealRequest) toInput() service.SpecialMealInput {
	return service.SpecialMealInput{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		BasePrice:   r.BasePrice,
		IsAvailable: r.IsAvailable,
	}
}

// MealIngredientRequest 套餐配料关联请求
type MealIngredientRequest struct {
	IngredientID uint `json:"ingredient_id" binding:"required"`
	IsDefault    bool `json:"is_default"`
	MaxQuantity  int  `json:"max_quantity"`
}

// ListSpecialMeals 套餐列表
func (h *Handler) ListSpecialMeals(c *gin.Context) {
	page, pageSize := parsePage(c)
	meals, total, err := h.SpecialMealService.List(repository.SpecialMealListFilter{Page: page, PageSize: pageSize})
	if err != nil {
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, meals, response.NewPagination(page, pageSize, total))
}

// GetSpecialMeal 套餐详情（含配料关联）
func (h *Handler) GetSpecialMeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	meal, err := h.SpecialMealService.Get(id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, meal)
}

// CreateSpecialMeal 创建套餐
func (h *Handler) CreateSpecialMeal(c *gin.Context) {
	var req SpecialMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	meal, err := h.SpecialMealService.Create(req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, meal)
}

// UpdateSpecialMeal 更新套餐
func (h *Handler) UpdateSpecialMeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SpecialMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	meal, err := h.SpecialMealService.Update(id, req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, meal)
}

// DeleteSpecialMeal 删除套餐
func (h *Handler) DeleteSpecialMeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.SpecialMealService.Delete(id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// UpsertMealIngredient 设置套餐可选配料
func (h *Handler) UpsertMealIngredient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req MealIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	link, err := h.SpecialMealService.UpsertIngredient(id, service.MealIngredientInput{
		IngredientID: req.IngredientID,
		IsDefault:    req.IsDefault,
		MaxQuantity:  req.MaxQuantity,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, link)
}

// RemoveMealIngredient 移除套餐配料
func (h *Handler) RemoveMealIngredient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	ingredientID, ok := parseIDParam(c, "ingredient_id")
	if !ok {
		return
	}
	if err := h.SpecialMealService.RemoveIngredient(id, ingredientID); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
