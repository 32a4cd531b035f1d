package admin

import (
	"strconv"

	"github.com/resto-next/internal/http/response"
	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/service"

	"github.com/gin-gonic/gin"
)

// IngredientCategoryRequest 配料分类请求
type IngredientCategoryRequest struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// IngredientRequest 配料请求
type IngredientRequest struct {
	CategoryID  uint         `json:"category_id"`
	Name        string       `json:"name"`
	Price       models.Money `json:"price"`
	IsAvailable bool         `json:"is_available"`
}

func (r IngredientRequest) toInput() service.IngredientInput {
	return service.IngredientInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
	}
}

// ListIngredientCategories 配料分类列表
func (h *Handler) ListIngredientCategories(c *gin.Context) {
	categories, err := h.IngredientService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// CreateIngredientCategory 创建配料分类
func (h *Handler) CreateIngredientCategory(c *gin.Context) {
	var req IngredientCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	category, err := h.IngredientService.CreateCategory(service.IngredientCategoryInput{Name: req.Name, DisplayOrder: req.DisplayOrder})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, category)
}

// UpdateIngredientCategory 更新配料分类
func (h *Handler) UpdateIngredientCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req IngredientCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	category, err := h.IngredientService.UpdateCategory(id, service.IngredientCategoryInput{Name: req.Name, DisplayOrder: req.DisplayOrder})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteIngredientCategory 删除配料分类
func (h *Handler) DeleteIngredientCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.IngredientService.DeleteCategory(id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ListIngredients 配料列表（可按分类过滤）
func (h *Handler) ListIngredients(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	ingredients, err := h.IngredientService.List(uint(categoryID))
	if err != nil {
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
		return
	}
	response.Success(c, ingredients)
}

// CreateIngredient 创建配料
func (h *Handler) CreateIngredient(c *gin.Context) {
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	ingredient, err := h.IngredientService.Create(req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, ingredient)
}

// UpdateIngredient 更新配料
func (h *Handler) UpdateIngredient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	ingredient, err := h.IngredientService.Update(id, req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, ingredient)
}

// DeleteIngredient 删除配料
func (h *Handler) DeleteIngredient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.IngredientService.Delete(id); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
