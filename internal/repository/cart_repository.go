package repository

import (
	"errors"
	"time"

	"github.com/resto-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetBySessionKey(sessionKey string) (*models.Cart, error)
	GetOrCreate(sessionKey string) (*models.Cart, error)
	Touch(cartID uint) error
	ListItems(cartID uint) ([]models.CartItem, error)
	GetItemByProduct(cartID, productID uint) (*models.CartItem, error)
	GetItem(cartID, itemID uint) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItem(item *models.CartItem) error
	DeleteItem(cartID, itemID uint) (int64, error)
	ListSpecialMeals(cartID uint) ([]models.CartSpecialMeal, error)
	GetSpecialMeal(cartID, lineID uint) (*models.CartSpecialMeal, error)
	CreateSpecialMeal(line *models.CartSpecialMeal) error
	UpdateSpecialMeal(line *models.CartSpecialMeal) error
	DeleteSpecialMeal(cartID, lineID uint) (int64, error)
	LineTotals(cartID uint) ([]models.Money, error)
	CountLines(cartID uint) (int64, error)
	ClearLines(cartID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetBySessionKey 按会话获取购物车（不存在返回 nil）
func (r *GormCartRepository) GetBySessionKey(sessionKey string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("session_key = ?", sessionKey).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetOrCreate 获取或创建会话购物车，重复调用返回同一行
func (r *GormCartRepository) GetOrCreate(sessionKey string) (*models.Cart, error) {
	cart := models.Cart{SessionKey: sessionKey}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_key"}},
		DoNothing: true,
	}).Create(&cart).Error
	if err != nil {
		return nil, err
	}
	var stored models.Cart
	if err := r.db.Where("session_key = ?", sessionKey).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// Touch 刷新购物车更新时间
func (r *GormCartRepository) Touch(cartID uint) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).Update("updated_at", time.Now()).Error
}

// ListItems 购物车菜品行（含菜品信息）
func (r *GormCartRepository) ListItems(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemByProduct 按菜品查找已有行
func (r *GormCartRepository) GetItemByProduct(cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetItem 获取本车内的菜品行
func (r *GormCartRepository) GetItem(cartID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("cart_id = ? AND id = ?", cartID, itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem 新增菜品行
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Omit("Product").Create(item).Error
}

// UpdateItem 更新数量与小计
func (r *GormCartRepository) UpdateItem(item *models.CartItem) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"quantity":    item.Quantity,
		"total_price": item.TotalPrice,
	}).Error
}

// DeleteItem 删除菜品行，返回影响行数
func (r *GormCartRepository) DeleteItem(cartID, itemID uint) (int64, error) {
	result := r.db.Where("cart_id = ? AND id = ?", cartID, itemID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// ListSpecialMeals 购物车套餐行（含套餐与配料选择）
func (r *GormCartRepository) ListSpecialMeals(cartID uint) ([]models.CartSpecialMeal, error) {
	var lines []models.CartSpecialMeal
	err := r.db.
		Preload("SpecialMeal").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Ingredients.Ingredient").
		Where("cart_id = ?", cartID).
		Order("id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// GetSpecialMeal 获取本车内的套餐行（含配料选择）
func (r *GormCartRepository) GetSpecialMeal(cartID, lineID uint) (*models.CartSpecialMeal, error) {
	var line models.CartSpecialMeal
	err := r.db.Preload("Ingredients").Where("cart_id = ? AND id = ?", cartID, lineID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

// CreateSpecialMeal 新增套餐行及其配料选择
func (r *GormCartRepository) CreateSpecialMeal(line *models.CartSpecialMeal) error {
	return r.db.Omit("SpecialMeal").Create(line).Error
}

// UpdateSpecialMeal 更新数量与小计
func (r *GormCartRepository) UpdateSpecialMeal(line *models.CartSpecialMeal) error {
	return r.db.Model(&models.CartSpecialMeal{}).Where("id = ?", line.ID).Updates(map[string]interface{}{
		"quantity":    line.Quantity,
		"total_price": line.TotalPrice,
	}).Error
}

// DeleteSpecialMeal 删除套餐行及其配料选择
func (r *GormCartRepository) DeleteSpecialMeal(cartID, lineID uint) (int64, error) {
	var line models.CartSpecialMeal
	if err := r.db.Select("id").Where("cart_id = ? AND id = ?", cartID, lineID).First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if err := r.db.Where("cart_special_meal_id = ?", line.ID).Delete(&models.CartSpecialMealIngredient{}).Error; err != nil {
		return 0, err
	}
	result := r.db.Delete(&models.CartSpecialMeal{}, line.ID)
	return result.RowsAffected, result.Error
}

// LineTotals 全部行小计（菜品行 + 套餐行）
func (r *GormCartRepository) LineTotals(cartID uint) ([]models.Money, error) {
	var items []models.CartItem
	if err := r.db.Select("id", "total_price").Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return nil, err
	}
	var meals []models.CartSpecialMeal
	if err := r.db.Select("id", "total_price").Where("cart_id = ?", cartID).Find(&meals).Error; err != nil {
		return nil, err
	}
	totals := make([]models.Money, 0, len(items)+len(meals))
	for _, item := range items {
		totals = append(totals, item.TotalPrice)
	}
	for _, meal := range meals {
		totals = append(totals, meal.TotalPrice)
	}
	return totals, nil
}

// CountLines 行数（菜品行 + 套餐行，不按数量累加）
func (r *GormCartRepository) CountLines(cartID uint) (int64, error) {
	var items, meals int64
	if err := r.db.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&items).Error; err != nil {
		return 0, err
	}
	if err := r.db.Model(&models.CartSpecialMeal{}).Where("cart_id = ?", cartID).Count(&meals).Error; err != nil {
		return 0, err
	}
	return items + meals, nil
}

// ClearLines 清空全部行，购物车本身保留
func (r *GormCartRepository) ClearLines(cartID uint) error {
	mealIDs := r.db.Model(&models.CartSpecialMeal{}).Select("id").Where("cart_id = ?", cartID)
	if err := r.db.Where("cart_special_meal_id IN (?)", mealIDs).Delete(&models.CartSpecialMealIngredient{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("cart_id = ?", cartID).Delete(&models.CartSpecialMeal{}).Error; err != nil {
		return err
	}
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
