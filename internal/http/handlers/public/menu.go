package public

import (
	handlershared "github.com/resto-next/internal/http/handlers/shared"
	"github.com/resto-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetMenu 菜单首页：分类 + 推荐菜品
func (h *Handler) GetMenu(c *gin.Context) {
	menu, err := h.CatalogService.Menu(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
		return
	}
	response.Success(c, menu)
}

// ListSpecialMeals 可定制套餐列表
func (h *Handler) ListSpecialMeals(c *gin.Context) {
	meals, err := h.CatalogService.ListSpecialMeals(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.menu_fetch_failed", err)
		return
	}
	response.Success(c, meals)
}

// GetSpecialMeal 套餐定制页
func (h *Handler) GetSpecialMeal(c *gin.Context) {
	id, ok := handlershared.ParseID(c.Param("id"))
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	detail, err := h.CatalogService.GetSpecialMealDetail(c.Request.Context(), id)
	if err != nil {
		handlershared.RespondMapped(c, err, menuErrorRules, response.CodeInternal, "error.menu_fetch_failed")
		return
	}
	response.Success(c, detail)
}
