package service

import "errors"

// 校验类错误
var (
	ErrInvalidQuantity         = errors.New("quantity must be at least 1")
	ErrCustomerPhoneRequired   = errors.New("customer phone is required")
	ErrInvalidLineType         = errors.New("invalid cart line type")
	ErrIngredientLimitExceeded = errors.New("ingredient quantity exceeds limit")
	ErrIngredientNotAllowed    = errors.New("ingredient not allowed for this meal")
	ErrInvalidSelection        = errors.New("invalid ingredient selection")
	ErrOrderStatusInvalid      = errors.New("invalid order status")
	ErrFeedbackInvalid         = errors.New("invalid feedback")
	ErrFeedbackRatingInvalid   = errors.New("rating must be between 1 and 5")
	ErrFeedbackEmailInvalid    = errors.New("invalid feedback email")
	ErrCatalogNameRequired     = errors.New("name is required")
	ErrCatalogPriceInvalid     = errors.New("price must not be negative")
	ErrMaxQuantityInvalid      = errors.New("max quantity must be at least 1")
	ErrSessionKeyRequired      = errors.New("session key is required")
)

// 不存在或不可售
var (
	ErrProductNotAvailable        = errors.New("product not found or unavailable")
	ErrSpecialMealNotAvailable    = errors.New("special meal not found or unavailable")
	ErrIngredientNotAvailable     = errors.New("ingredient not found or unavailable")
	ErrCartLineNotFound           = errors.New("cart line not found")
	ErrOrderNotFound              = errors.New("order not found")
	ErrCategoryNotFound           = errors.New("category not found")
	ErrIngredientCategoryNotFound = errors.New("ingredient category not found")
	ErrSpecialMealNotFound        = errors.New("special meal not found")
	ErrIngredientNotFound         = errors.New("ingredient not found")
	ErrProductNotFound            = errors.New("product not found")
	ErrCategoryInUse              = errors.New("category still has products")
)

// 购物车与下单
var (
	ErrCartEmpty            = errors.New("cart is empty")
	ErrCartUpdateFailed     = errors.New("cart update failed")
	ErrOrderCreateFailed    = errors.New("order create failed")
	ErrOrderUpdateFailed    = errors.New("order update failed")
	ErrFeedbackCreateFailed = errors.New("feedback create failed")
)
