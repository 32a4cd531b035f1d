package service

import (
	"errors"
	"strings"

	"github.com/resto-next/internal/constants"
	"github.com/resto-next/internal/logger"
	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/repository"

	"gorm.io/gorm"
)

// CartSummary 写操作后返回的购物车汇总
type CartSummary struct {
	Total models.Money `json:"cart_total"`
	Count int64        `json:"cart_count"`
}

// IngredientSelection 套餐配料选择输入
type IngredientSelection struct {
	IngredientID uint `json:"ingredient_id"`
	Quantity     int  `json:"quantity"`
}

// AddCustomizedMealInput 加入定制套餐输入
type AddCustomizedMealInput struct {
	SpecialMealID uint
	Quantity      int
	Selections    []IngredientSelection
	Notes         string
}

// CartProductLine 购物车菜品行（展示用）
type CartProductLine struct {
	ID         uint         `json:"id"`
	Type       string       `json:"type"`
	ProductID  uint         `json:"product_id"`
	Name       string       `json:"name"`
	Image      string       `json:"image"`
	UnitPrice  models.Money `json:"unit_price"`
	Quantity   int          `json:"quantity"`
	TotalPrice models.Money `json:"total_price"`
	Available  bool         `json:"available"`
}

// CartMealIngredientLine 套餐行配料（展示用）
type CartMealIngredientLine struct {
	IngredientID uint         `json:"ingredient_id"`
	Name         string       `json:"name"`
	Quantity     int          `json:"quantity"`
	UnitPrice    models.Money `json:"unit_price"`
}

// CartMealLine 购物车套餐行（展示用）
type CartMealLine struct {
	ID            uint                     `json:"id"`
	Type          string                   `json:"type"`
	SpecialMealID uint                     `json:"special_meal_id"`
	Name          string                   `json:"name"`
	Image         string                   `json:"image"`
	BasePrice     models.Money             `json:"base_price"`
	Quantity      int                      `json:"quantity"`
	TotalPrice    models.Money             `json:"total_price"`
	Notes         string                   `json:"notes"`
	Ingredients   []CartMealIngredientLine `json:"ingredients"`
}

// CartDetail 购物车详情
type CartDetail struct {
	Items        []CartProductLine `json:"items"`
	SpecialMeals []CartMealLine    `json:"special_meals"`
	Total        models.Money      `json:"cart_total"`
	Count        int64             `json:"cart_count"`
}

// CartServiceOptions 购物车服务配置
type CartServiceOptions struct {
	EnforceIngredientLimits bool
}

// CartService 购物车服务
type CartService struct {
	cartRepo       repository.CartRepository
	productRepo    repository.ProductRepository
	mealRepo       repository.SpecialMealRepository
	ingredientRepo repository.IngredientRepository
	locker         *CartLocker
	options        CartServiceOptions
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, mealRepo repository.SpecialMealRepository, ingredientRepo repository.IngredientRepository, locker *CartLocker, options CartServiceOptions) *CartService {
	if locker == nil {
		locker = NewCartLocker()
	}
	return &CartService{
		cartRepo:       cartRepo,
		productRepo:    productRepo,
		mealRepo:       mealRepo,
		ingredientRepo: ingredientRepo,
		locker:         locker,
		options:        options,
	}
}

// GetOrCreateCart 获取或创建会话购物车
func (s *CartService) GetOrCreateCart(sessionKey string) (*models.Cart, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return nil, ErrSessionKeyRequired
	}
	cart, err := s.cartRepo.GetOrCreate(sessionKey)
	if err != nil {
		logger.Errorw("cart_get_or_create_failed", "session_key", sessionKey, "error", err)
		return nil, ErrCartUpdateFailed
	}
	return cart, nil
}

// AddProduct 加入菜品；同一菜品合并为一行并累加数量
func (s *CartService) AddProduct(sessionKey string, productID uint, quantity int) (*CartSummary, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return nil, ErrSessionKeyRequired
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	unlock := s.locker.Lock(sessionKey)
	defer unlock()

	var summary *CartSummary
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.GetOrCreate(sessionKey)
		if err != nil {
			return err
		}
		product, err := s.productRepo.WithTx(tx).GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil || !product.IsAvailable {
			return ErrProductNotAvailable
		}

		existing, err := cartRepo.GetItemByProduct(cart.ID, product.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Quantity += quantity
			existing.TotalPrice = product.Price.Times(existing.Quantity)
			if err := cartRepo.UpdateItem(existing); err != nil {
				return err
			}
		} else {
			if err := cartRepo.CreateItem(&models.CartItem{
				CartID:     cart.ID,
				ProductID:  product.ID,
				Quantity:   quantity,
				TotalPrice: product.Price.Times(quantity),
			}); err != nil {
				return err
			}
		}
		if err := cartRepo.Touch(cart.ID); err != nil {
			return err
		}
		summary, err = summarizeCart(cartRepo, cart.ID)
		return err
	})
	if err != nil {
		return nil, cartFailure("cart_add_product_failed", sessionKey, err)
	}
	logger.Debugw("cart_product_added", "session_key", sessionKey, "product_id", productID, "quantity", quantity)
	return summary, nil
}

// AddCustomizedMeal 加入定制套餐；每次加入都是新行，配料查询失败则整体回滚
func (s *CartService) AddCustomizedMeal(sessionKey string, input AddCustomizedMealInput) (*CartSummary, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return nil, ErrSessionKeyRequired
	}
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	selections, err := normalizeSelections(input.Selections)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(sessionKey)
	defer unlock()

	var summary *CartSummary
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		mealRepo := s.mealRepo.WithTx(tx)
		ingredientRepo := s.ingredientRepo.WithTx(tx)

		cart, err := cartRepo.GetOrCreate(sessionKey)
		if err != nil {
			return err
		}
		meal, err := mealRepo.GetByID(input.SpecialMealID)
		if err != nil {
			return err
		}
		if meal == nil || !meal.IsAvailable {
			return ErrSpecialMealNotAvailable
		}

		priced := make([]pricedSelection, 0, len(selections))
		rows := make([]models.CartSpecialMealIngredient, 0, len(selections))
		for _, selection := range selections {
			ingredient, err := ingredientRepo.GetByID(selection.IngredientID)
			if err != nil {
				return err
			}
			if ingredient == nil || !ingredient.IsAvailable {
				return ErrIngredientNotAvailable
			}
			if s.options.EnforceIngredientLimits {
				if err := checkIngredientLimit(mealRepo, meal.ID, selection); err != nil {
					return err
				}
			}
			priced = append(priced, pricedSelection{UnitPrice: ingredient.Price, Quantity: selection.Quantity})
			rows = append(rows, models.CartSpecialMealIngredient{
				IngredientID: ingredient.ID,
				Quantity:     selection.Quantity,
			})
		}

		line := &models.CartSpecialMeal{
			CartID:        cart.ID,
			SpecialMealID: meal.ID,
			Quantity:      input.Quantity,
			TotalPrice:    specialMealUnitPrice(meal.BasePrice, priced).Times(input.Quantity),
			Notes:         strings.TrimSpace(input.Notes),
			Ingredients:   rows,
		}
		if err := cartRepo.CreateSpecialMeal(line); err != nil {
			return err
		}
		if err := cartRepo.Touch(cart.ID); err != nil {
			return err
		}
		summary, err = summarizeCart(cartRepo, cart.ID)
		return err
	})
	if err != nil {
		return nil, cartFailure("cart_add_special_meal_failed", sessionKey, err)
	}
	logger.Debugw("cart_special_meal_added",
		"session_key", sessionKey,
		"special_meal_id", input.SpecialMealID,
		"quantity", input.Quantity,
		"selections", len(selections),
	)
	return summary, nil
}

// UpdateLineQuantity 修改行数量并按当前价格重算小计；数量小于 1 直接拒绝
func (s *CartService) UpdateLineQuantity(sessionKey string, lineID uint, lineType string, quantity int) (*CartSummary, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return nil, ErrSessionKeyRequired
	}
	lineType, err := normalizeLineType(lineType)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	unlock := s.locker.Lock(sessionKey)
	defer unlock()

	var summary *CartSummary
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.GetBySessionKey(sessionKey)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartLineNotFound
		}

		switch lineType {
		case constants.LineTypeProduct:
			err = s.updateProductLine(tx, cartRepo, cart.ID, lineID, quantity)
		default:
			err = s.updateMealLine(tx, cartRepo, cart.ID, lineID, quantity)
		}
		if err != nil {
			return err
		}
		if err := cartRepo.Touch(cart.ID); err != nil {
			return err
		}
		summary, err = summarizeCart(cartRepo, cart.ID)
		return err
	})
	if err != nil {
		return nil, cartFailure("cart_update_line_failed", sessionKey, err)
	}
	return summary, nil
}

func (s *CartService) updateProductLine(tx *gorm.DB, cartRepo *repository.GormCartRepository, cartID, lineID uint, quantity int) error {
	item, err := cartRepo.GetItem(cartID, lineID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartLineNotFound
	}
	product, err := s.productRepo.WithTx(tx).GetByID(item.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotAvailable
	}
	item.Quantity = quantity
	item.TotalPrice = product.Price.Times(quantity)
	return cartRepo.UpdateItem(item)
}

func (s *CartService) updateMealLine(tx *gorm.DB, cartRepo *repository.GormCartRepository, cartID, lineID uint, quantity int) error {
	line, err := cartRepo.GetSpecialMeal(cartID, lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return ErrCartLineNotFound
	}
	meal, err := s.mealRepo.WithTx(tx).GetByID(line.SpecialMealID)
	if err != nil {
		return err
	}
	if meal == nil {
		return ErrSpecialMealNotAvailable
	}
	priced, err := priceStoredSelections(s.ingredientRepo.WithTx(tx), line.Ingredients)
	if err != nil {
		return err
	}
	line.Quantity = quantity
	line.TotalPrice = specialMealUnitPrice(meal.BasePrice, priced).Times(quantity)
	return cartRepo.UpdateSpecialMeal(line)
}

// RemoveLine 删除行（套餐行连同配料选择）；行不存在时不做任何事
func (s *CartService) RemoveLine(sessionKey string, lineID uint, lineType string) (*CartSummary, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return nil, ErrSessionKeyRequired
	}
	lineType, err := normalizeLineType(lineType)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(sessionKey)
	defer unlock()

	summary := &CartSummary{Total: models.ZeroMoney()}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.GetBySessionKey(sessionKey)
		if err != nil || cart == nil {
			return err
		}
		var affected int64
		if lineType == constants.LineTypeProduct {
			affected, err = cartRepo.DeleteItem(cart.ID, lineID)
		} else {
			affected, err = cartRepo.DeleteSpecialMeal(cart.ID, lineID)
		}
		if err != nil {
			return err
		}
		if affected > 0 {
			if err := cartRepo.Touch(cart.ID); err != nil {
				return err
			}
		}
		summary, err = summarizeCart(cartRepo, cart.ID)
		return err
	})
	if err != nil {
		return nil, cartFailure("cart_remove_line_failed", sessionKey, err)
	}
	return summary, nil
}

// GetTotal 实时汇总全部行小计
func (s *CartService) GetTotal(cart *models.Cart) (models.Money, error) {
	if cart == nil {
		return models.ZeroMoney(), nil
	}
	return cartTotal(s.cartRepo, cart.ID)
}

// GetLineCount 行数（菜品行 + 套餐行）
func (s *CartService) GetLineCount(cart *models.Cart) (int64, error) {
	if cart == nil {
		return 0, nil
	}
	return s.cartRepo.CountLines(cart.ID)
}

// Summary 当前会话的购物车汇总（不创建购物车）
func (s *CartService) Summary(sessionKey string) (*CartSummary, error) {
	cart, err := s.cartRepo.GetBySessionKey(strings.TrimSpace(sessionKey))
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartSummary{Total: models.ZeroMoney()}, nil
	}
	return summarizeCart(s.cartRepo, cart.ID)
}

// GetCartDetail 购物车详情（只读，不创建购物车）
func (s *CartService) GetCartDetail(sessionKey string) (*CartDetail, error) {
	detail := &CartDetail{
		Items:        []CartProductLine{},
		SpecialMeals: []CartMealLine{},
		Total:        models.ZeroMoney(),
	}
	cart, err := s.cartRepo.GetBySessionKey(strings.TrimSpace(sessionKey))
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return detail, nil
	}

	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		line := CartProductLine{
			ID:         item.ID,
			Type:       constants.LineTypeProduct,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		}
		if item.Product != nil {
			line.Name = item.Product.Name
			line.Image = item.Product.Image
			line.UnitPrice = item.Product.Price
			line.Available = item.Product.IsAvailable
		}
		detail.Items = append(detail.Items, line)
	}

	meals, err := s.cartRepo.ListSpecialMeals(cart.ID)
	if err != nil {
		return nil, err
	}
	for _, meal := range meals {
		line := CartMealLine{
			ID:            meal.ID,
			Type:          constants.LineTypeSpecialMeal,
			SpecialMealID: meal.SpecialMealID,
			Quantity:      meal.Quantity,
			TotalPrice:    meal.TotalPrice,
			Notes:         meal.Notes,
			Ingredients:   make([]CartMealIngredientLine, 0, len(meal.Ingredients)),
		}
		if meal.SpecialMeal != nil {
			line.Name = meal.SpecialMeal.Name
			line.Image = meal.SpecialMeal.Image
			line.BasePrice = meal.SpecialMeal.BasePrice
		}
		for _, selection := range meal.Ingredients {
			ingredientLine := CartMealIngredientLine{
				IngredientID: selection.IngredientID,
				Quantity:     selection.Quantity,
			}
			if selection.Ingredient != nil {
				ingredientLine.Name = selection.Ingredient.Name
				ingredientLine.UnitPrice = selection.Ingredient.Price
			}
			line.Ingredients = append(line.Ingredients, ingredientLine)
		}
		detail.SpecialMeals = append(detail.SpecialMeals, line)
	}

	summary, err := summarizeCart(s.cartRepo, cart.ID)
	if err != nil {
		return nil, err
	}
	detail.Total = summary.Total
	detail.Count = summary.Count
	return detail, nil
}

type pricedSelection struct {
	UnitPrice models.Money
	Quantity  int
}

// specialMealUnitPrice 单份套餐价格 = 基础价 + Σ 配料单价 × 份数
func specialMealUnitPrice(base models.Money, selections []pricedSelection) models.Money {
	unit := base
	for _, selection := range selections {
		unit = unit.Add(selection.UnitPrice.Times(selection.Quantity))
	}
	return unit
}

// normalizeSelections 跳过数量为 0 的选择，合并重复配料，负数视为非法
func normalizeSelections(selections []IngredientSelection) ([]IngredientSelection, error) {
	result := make([]IngredientSelection, 0, len(selections))
	index := make(map[uint]int, len(selections))
	for _, selection := range selections {
		if selection.Quantity < 0 || selection.IngredientID == 0 {
			return nil, ErrInvalidSelection
		}
		if selection.Quantity == 0 {
			continue
		}
		if pos, ok := index[selection.IngredientID]; ok {
			result[pos].Quantity += selection.Quantity
			continue
		}
		index[selection.IngredientID] = len(result)
		result = append(result, selection)
	}
	return result, nil
}

func normalizeLineType(lineType string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(lineType)) {
	case constants.LineTypeProduct:
		return constants.LineTypeProduct, nil
	case constants.LineTypeSpecialMeal:
		return constants.LineTypeSpecialMeal, nil
	default:
		return "", ErrInvalidLineType
	}
}

func checkIngredientLimit(mealRepo *repository.GormSpecialMealRepository, mealID uint, selection IngredientSelection) error {
	link, err := mealRepo.GetLink(mealID, selection.IngredientID)
	if err != nil {
		return err
	}
	if link == nil {
		return ErrIngredientNotAllowed
	}
	if selection.Quantity > link.MaxQuantity {
		return ErrIngredientLimitExceeded
	}
	return nil
}

// priceStoredSelections 按配料当前价格重新计价；配料已删除视为查询失败
func priceStoredSelections(ingredientRepo repository.IngredientRepository, rows []models.CartSpecialMealIngredient) ([]pricedSelection, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.IngredientID)
	}
	ingredients, err := ingredientRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	prices := make(map[uint]models.Money, len(ingredients))
	for _, ingredient := range ingredients {
		prices[ingredient.ID] = ingredient.Price
	}
	priced := make([]pricedSelection, 0, len(rows))
	for _, row := range rows {
		price, ok := prices[row.IngredientID]
		if !ok {
			return nil, ErrIngredientNotAvailable
		}
		priced = append(priced, pricedSelection{UnitPrice: price, Quantity: row.Quantity})
	}
	return priced, nil
}

func cartTotal(cartRepo repository.CartRepository, cartID uint) (models.Money, error) {
	totals, err := cartRepo.LineTotals(cartID)
	if err != nil {
		return models.ZeroMoney(), err
	}
	sum := models.ZeroMoney()
	for _, total := range totals {
		sum = sum.Add(total)
	}
	return sum, nil
}

func summarizeCart(cartRepo repository.CartRepository, cartID uint) (*CartSummary, error) {
	total, err := cartTotal(cartRepo, cartID)
	if err != nil {
		return nil, err
	}
	count, err := cartRepo.CountLines(cartID)
	if err != nil {
		return nil, err
	}
	return &CartSummary{Total: total, Count: count}, nil
}

var cartDomainErrors = []error{
	ErrSessionKeyRequired,
	ErrInvalidQuantity,
	ErrInvalidLineType,
	ErrInvalidSelection,
	ErrIngredientLimitExceeded,
	ErrIngredientNotAllowed,
	ErrProductNotAvailable,
	ErrSpecialMealNotAvailable,
	ErrIngredientNotAvailable,
	ErrCartLineNotFound,
	ErrCartEmpty,
	ErrCustomerPhoneRequired,
}

func isCartDomainError(err error) bool {
	for _, target := range cartDomainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// cartFailure 业务错误原样返回，其余记录日志后统一为 ErrCartUpdateFailed
func cartFailure(event, sessionKey string, err error) error {
	if isCartDomainError(err) {
		return err
	}
	logger.Errorw(event, "session_key", sessionKey, "error", err)
	return ErrCartUpdateFailed
}
