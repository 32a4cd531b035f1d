package shared

import (
	"errors"

	"github.com/resto-next/internal/http/response"
	"github.com/resto-next/internal/service"

	"github.com/gin-gonic/gin"
)

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Key    string
}

// Match 返回第一个命中的规则。
func Match(err error, rules []MappedError) (MappedError, bool) {
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			return rule, true
		}
	}
	return MappedError{}, false
}

// RespondMapped 命中规则时返回对应错误，否则记录原始错误并返回兜底错误。
func RespondMapped(c *gin.Context, err error, rules []MappedError, fallbackCode int, fallbackKey string) {
	if rule, ok := Match(err, rules); ok {
		RespondError(c, rule.Code, rule.Key, nil)
		return
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}

// RespondCartMapped 同 RespondMapped，但输出购物车响应结构。
func RespondCartMapped(c *gin.Context, err error, rules []MappedError, fallbackCode int, fallbackKey string) {
	if rule, ok := Match(err, rules); ok {
		RespondCartError(c, rule.Code, rule.Key, nil)
		return
	}
	RespondCartError(c, fallbackCode, fallbackKey, err)
}

// CatalogErrorRules 后台菜单维护的错误映射
var CatalogErrorRules = []MappedError{
	{Target: service.ErrCatalogNameRequired, Code: response.CodeBadRequest, Key: "error.catalog_name_required"},
	{Target: service.ErrCatalogPriceInvalid, Code: response.CodeBadRequest, Key: "error.catalog_price_invalid"},
	{Target: service.ErrMaxQuantityInvalid, Code: response.CodeBadRequest, Key: "error.max_quantity_invalid"},
	{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound, Key: "error.category_not_found"},
	{Target: service.ErrCategoryInUse, Code: response.CodeConflict, Key: "error.category_in_use"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrIngredientNotFound, Code: response.CodeNotFound, Key: "error.ingredient_not_found"},
	{Target: service.ErrIngredientCategoryNotFound, Code: response.CodeNotFound, Key: "error.ingredient_category_not_found"},
	{Target: service.ErrSpecialMealNotFound, Code: response.CodeNotFound, Key: "error.special_meal_not_found"},
}

// CartErrorRules 购物车写操作与下单的错误映射
var CartErrorRules = []MappedError{
	{Target: service.ErrSessionKeyRequired, Code: response.CodeBadRequest, Key: "error.session_required"},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest, Key: "error.invalid_quantity"},
	{Target: service.ErrInvalidLineType, Code: response.CodeBadRequest, Key: "error.invalid_line_type"},
	{Target: service.ErrInvalidSelection, Code: response.CodeBadRequest, Key: "error.invalid_selection"},
	{Target: service.ErrIngredientLimitExceeded, Code: response.CodeBadRequest, Key: "error.ingredient_limit"},
	{Target: service.ErrIngredientNotAllowed, Code: response.CodeBadRequest, Key: "error.ingredient_not_allowed"},
	{Target: service.ErrCustomerPhoneRequired, Code: response.CodeBadRequest, Key: "error.phone_required"},
	{Target: service.ErrCartEmpty, Code: response.CodeBadRequest, Key: "error.cart_empty"},
	{Target: service.ErrProductNotAvailable, Code: response.CodeNotFound, Key: "error.product_not_available"},
	{Target: service.ErrSpecialMealNotAvailable, Code: response.CodeNotFound, Key: "error.special_meal_unavailable"},
	{Target: service.ErrIngredientNotAvailable, Code: response.CodeNotFound, Key: "error.ingredient_unavailable"},
	{Target: service.ErrCartLineNotFound, Code: response.CodeNotFound, Key: "error.cart_line_not_found"},
}
