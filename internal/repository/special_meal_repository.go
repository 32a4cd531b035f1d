package repository

import (
	"errors"

	"github.com/resto-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpecialMealRepository 套餐数据访问接口
type SpecialMealRepository interface {
	List(filter SpecialMealListFilter) ([]models.SpecialMeal, int64, error)
	GetByID(id uint) (*models.SpecialMeal, error)
	GetDetail(id uint) (*models.SpecialMeal, error)
	Create(meal *models.SpecialMeal) error
	Update(meal *models.SpecialMeal) error
	Delete(id uint) error
	GetLink(mealID, ingredientID uint) (*models.SpecialMealIngredient, error)
	ListLinks(mealID uint) ([]models.SpecialMealIngredient, error)
	UpsertLink(link *models.SpecialMealIngredient) error
	DeleteLink(mealID, ingredientID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormSpecialMealRepository
}

// GormSpecialMealRepository GORM 实现
type GormSpecialMealRepository struct {
	db *gorm.DB
}

// NewSpecialMealRepository 创建套餐仓库
func NewSpecialMealRepository(db *gorm.DB) *GormSpecialMealRepository {
	return &GormSpecialMealRepository{db: db}
}

// WithTx 绑定事务
func (r *GormSpecialMealRepository) WithTx(tx *gorm.DB) *GormSpecialMealRepository {
	if tx == nil {
		return r
	}
	return &GormSpecialMealRepository{db: tx}
}

// List 套餐列表
func (r *GormSpecialMealRepository) List(filter SpecialMealListFilter) ([]models.SpecialMeal, int64, error) {
	query := r.db.Model(&models.SpecialMeal{})
	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var meals []models.SpecialMeal
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id ASC").Find(&meals).Error; err != nil {
		return nil, 0, err
	}
	return meals, total, nil
}

// GetByID 获取套餐（不存在返回 nil）
func (r *GormSpecialMealRepository) GetByID(id uint) (*models.SpecialMeal, error) {
	var meal models.SpecialMeal
	if err := r.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

// GetDetail 获取套餐及其可选配料
func (r *GormSpecialMealRepository) GetDetail(id uint) (*models.SpecialMeal, error) {
	var meal models.SpecialMeal
	err := r.db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Ingredient.Category").
		First(&meal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

// Create 创建套餐
func (r *GormSpecialMealRepository) Create(meal *models.SpecialMeal) error {
	return r.db.Omit("Ingredients").Create(meal).Error
}

// Update 更新套餐基础信息
func (r *GormSpecialMealRepository) Update(meal *models.SpecialMeal) error {
	return r.db.Omit("Ingredients").Save(meal).Error
}

// Delete 删除套餐
func (r *GormSpecialMealRepository) Delete(id uint) error {
	return r.db.Delete(&models.SpecialMeal{}, id).Error
}

// GetLink 查询套餐与配料的关联
func (r *GormSpecialMealRepository) GetLink(mealID, ingredientID uint) (*models.SpecialMealIngredient, error) {
	var link models.SpecialMealIngredient
	err := r.db.Where("special_meal_id = ? AND ingredient_id = ?", mealID, ingredientID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

// ListLinks 套餐的全部配料关联
func (r *GormSpecialMealRepository) ListLinks(mealID uint) ([]models.SpecialMealIngredient, error) {
	var links []models.SpecialMealIngredient
	if err := r.db.Where("special_meal_id = ?", mealID).Order("id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// UpsertLink 按 (套餐, 配料) 唯一键写入关联
func (r *GormSpecialMealRepository) UpsertLink(link *models.SpecialMealIngredient) error {
	if link == nil {
		return nil
	}
	return r.db.Omit("Ingredient").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "special_meal_id"}, {Name: "ingredient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_default", "max_quantity", "updated_at"}),
	}).Create(link).Error
}

// DeleteLink 删除关联，返回影响行数
func (r *GormSpecialMealRepository) DeleteLink(mealID, ingredientID uint) (int64, error) {
	result := r.db.Where("special_meal_id = ? AND ingredient_id = ?", mealID, ingredientID).
		Delete(&models.SpecialMealIngredient{})
	return result.RowsAffected, result.Error
}
