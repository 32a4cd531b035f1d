package service

import (
	"strings"

	"github.com/resto-next/internal/constants"
	"github.com/resto-next/internal/logger"
	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/queue"
	"github.com/resto-next/internal/repository"

	"gorm.io/gorm"
)

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Notes           string
}

// OrderServiceOptions 订单服务配置
type OrderServiceOptions struct {
	Currency string
}

// OrderService 订单服务：把购物车物化为订单快照
type OrderService struct {
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	productRepo    repository.ProductRepository
	mealRepo       repository.SpecialMealRepository
	ingredientRepo repository.IngredientRepository
	queueClient    *queue.Client
	locker         *CartLocker
	options        OrderServiceOptions
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, mealRepo repository.SpecialMealRepository, ingredientRepo repository.IngredientRepository, queueClient *queue.Client, locker *CartLocker, options OrderServiceOptions) *OrderService {
	if locker == nil {
		locker = NewCartLocker()
	}
	if strings.TrimSpace(options.Currency) == "" {
		options.Currency = constants.DefaultCurrency
	}
	return &OrderService{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		productRepo:    productRepo,
		mealRepo:       mealRepo,
		ingredientRepo: ingredientRepo,
		queueClient:    queueClient,
		locker:         locker,
		options:        options,
	}
}

// PlaceOrder 下单：读取购物车、按当前价格写入快照并重算总价、清空购物车，全部在同一事务内
func (s *OrderService) PlaceOrder(sessionKey string, input PlaceOrderInput) (*models.Order, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		return nil, ErrSessionKeyRequired
	}
	phone := strings.TrimSpace(input.CustomerPhone)
	if phone == "" {
		return nil, ErrCustomerPhoneRequired
	}

	unlock := s.locker.Lock(sessionKey)
	defer unlock()

	var order *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.GetBySessionKey(sessionKey)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartEmpty
		}
		count, err := cartRepo.CountLines(cart.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrCartEmpty
		}
		cartSum, err := cartTotal(cartRepo, cart.ID)
		if err != nil {
			return err
		}

		items, err := s.snapshotItems(tx, cartRepo, cart.ID)
		if err != nil {
			return err
		}
		meals, err := s.snapshotSpecialMeals(tx, cartRepo, cart.ID)
		if err != nil {
			return err
		}
		// 加购后价格变动时按下单时价格结算，订单总价始终等于各行小计之和
		total := orderLinesTotal(items, meals)
		if !total.Equal(cartSum) {
			logger.Infow("order_cart_repriced",
				"session_key", sessionKey,
				"cart_total", cartSum.String(),
				"order_total", total.String(),
			)
		}

		order = &models.Order{
			SessionKey:      sessionKey,
			CustomerName:    strings.TrimSpace(input.CustomerName),
			CustomerPhone:   phone,
			CustomerAddress: strings.TrimSpace(input.CustomerAddress),
			Notes:           strings.TrimSpace(input.Notes),
			TotalPrice:      total,
			Currency:        s.options.Currency,
			Status:          constants.OrderStatusPending,
			Items:           items,
			SpecialMeals:    meals,
		}
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		if err := cartRepo.ClearLines(cart.ID); err != nil {
			return err
		}
		return cartRepo.Touch(cart.ID)
	})
	if err != nil {
		if isCartDomainError(err) {
			return nil, err
		}
		logger.Errorw("order_place_failed", "session_key", sessionKey, "error", err)
		return nil, ErrOrderCreateFailed
	}

	logger.Infow("order_placed",
		"order_id", order.ID,
		"total_price", order.TotalPrice.String(),
		"items", len(order.Items),
		"special_meals", len(order.SpecialMeals),
	)
	if err := s.queueClient.EnqueueOrderCreated(queue.OrderCreatedPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("order_enqueue_created_failed", "order_id", order.ID, "error", err)
	}
	return order, nil
}

// snapshotItems 菜品行快照：名称与当前单价，小计按当前单价重算
func (s *OrderService) snapshotItems(tx *gorm.DB, cartRepo *repository.GormCartRepository, cartID uint) ([]models.OrderItem, error) {
	items, err := cartRepo.ListItems(cartID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []models.OrderItem{}, nil
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.WithTx(tx).GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	result := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, ErrProductNotAvailable
		}
		result = append(result, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  product.Price.Times(item.Quantity),
		})
	}
	return result, nil
}

// snapshotSpecialMeals 套餐行快照：基础价与配料当前单价，小计 = (基础价 + Σ 配料单价 × 份数) × 数量
func (s *OrderService) snapshotSpecialMeals(tx *gorm.DB, cartRepo *repository.GormCartRepository, cartID uint) ([]models.OrderSpecialMeal, error) {
	lines, err := cartRepo.ListSpecialMeals(cartID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []models.OrderSpecialMeal{}, nil
	}
	ingredientIDs := make([]uint, 0)
	for _, line := range lines {
		for _, selection := range line.Ingredients {
			ingredientIDs = append(ingredientIDs, selection.IngredientID)
		}
	}
	ingredients := make(map[uint]models.Ingredient, len(ingredientIDs))
	if len(ingredientIDs) > 0 {
		rows, err := s.ingredientRepo.WithTx(tx).GetByIDs(ingredientIDs)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			ingredients[row.ID] = row
		}
	}

	mealRepo := s.mealRepo.WithTx(tx)
	result := make([]models.OrderSpecialMeal, 0, len(lines))
	for _, line := range lines {
		meal, err := mealRepo.GetByID(line.SpecialMealID)
		if err != nil {
			return nil, err
		}
		if meal == nil {
			return nil, ErrSpecialMealNotAvailable
		}
		snapshots := make([]models.OrderSpecialMealIngredient, 0, len(line.Ingredients))
		priced := make([]pricedSelection, 0, len(line.Ingredients))
		for _, selection := range line.Ingredients {
			ingredient, ok := ingredients[selection.IngredientID]
			if !ok {
				return nil, ErrIngredientNotAvailable
			}
			snapshots = append(snapshots, models.OrderSpecialMealIngredient{
				IngredientID:   ingredient.ID,
				IngredientName: ingredient.Name,
				Quantity:       selection.Quantity,
				UnitPrice:      ingredient.Price,
			})
			priced = append(priced, pricedSelection{UnitPrice: ingredient.Price, Quantity: selection.Quantity})
		}
		result = append(result, models.OrderSpecialMeal{
			SpecialMealID: meal.ID,
			MealName:      meal.Name,
			Quantity:      line.Quantity,
			BasePrice:     meal.BasePrice,
			TotalPrice:    specialMealUnitPrice(meal.BasePrice, priced).Times(line.Quantity),
			Notes:         line.Notes,
			Ingredients:   snapshots,
		})
	}
	return result, nil
}

// orderLinesTotal 订单行小计之和
func orderLinesTotal(items []models.OrderItem, meals []models.OrderSpecialMeal) models.Money {
	total := models.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	for _, meal := range meals {
		total = total.Add(meal.TotalPrice)
	}
	return total
}

// GetOrderForSession 订单确认页：只能查看本会话下的订单
func (s *OrderService) GetOrderForSession(sessionKey string, orderID uint) (*models.Order, error) {
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" || orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByIDAndSession(orderID, sessionKey)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByID 后台订单详情
func (s *OrderService) GetByID(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin 后台订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" {
		status, err := NormalizeOrderStatus(filter.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = status
	}
	return s.orderRepo.ListAdmin(filter)
}

// LatestMeta 后台轮询新订单
func (s *OrderService) LatestMeta() (repository.OrderLatestMeta, error) {
	return s.orderRepo.LatestMeta()
}

// UpdateStatus 后台设置订单状态：枚举内任意值均可写入，不做流转限制
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	target, err := NormalizeOrderStatus(status)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == target {
		return order, nil
	}

	previous := order.Status
	if err := s.orderRepo.UpdateStatus(order.ID, target); err != nil {
		logger.Errorw("order_update_status_failed", "order_id", order.ID, "status", target, "error", err)
		return nil, ErrOrderUpdateFailed
	}
	order.Status = target
	logger.Infow("order_status_changed", "order_id", order.ID, "from", previous, "to", target)

	if err := s.queueClient.EnqueueOrderStatusChanged(queue.OrderStatusChangedPayload{
		OrderID:    order.ID,
		FromStatus: previous,
		ToStatus:   target,
	}); err != nil {
		logger.Warnw("order_enqueue_status_changed_failed", "order_id", order.ID, "error", err)
	}
	return order, nil
}
