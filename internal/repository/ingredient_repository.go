package repository

import (
	"errors"

	"github.com/resto-next/internal/models"

	"gorm.io/gorm"
)

// IngredientRepository 配料与配料分类数据访问接口
type IngredientRepository interface {
	ListCategories() ([]models.IngredientCategory, error)
	GetCategoryByID(id uint) (*models.IngredientCategory, error)
	CreateCategory(category *models.IngredientCategory) error
	UpdateCategory(category *models.IngredientCategory) error
	DeleteCategory(id uint) error
	List(categoryID uint) ([]models.Ingredient, error)
	GetByID(id uint) (*models.Ingredient, error)
	GetByIDs(ids []uint) ([]models.Ingredient, error)
	Create(ingredient *models.Ingredient) error
	Update(ingredient *models.Ingredient) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormIngredientRepository
}

// GormIngredientRepository GORM 实现
type GormIngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository 创建配料仓库
func NewIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

// WithTx 绑定事务
func (r *GormIngredientRepository) WithTx(tx *gorm.DB) *GormIngredientRepository {
	if tx == nil {
		return r
	}
	return &GormIngredientRepository{db: tx}
}

// ListCategories 配料分类（按展示顺序）
func (r *GormIngredientRepository) ListCategories() ([]models.IngredientCategory, error) {
	var categories []models.IngredientCategory
	if err := r.db.Order("display_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID 获取配料分类
func (r *GormIngredientRepository) GetCategoryByID(id uint) (*models.IngredientCategory, error) {
	var category models.IngredientCategory
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// CreateCategory 创建配料分类
func (r *GormIngredientRepository) CreateCategory(category *models.IngredientCategory) error {
	return r.db.Create(category).Error
}

// UpdateCategory 更新配料分类
func (r *GormIngredientRepository) UpdateCategory(category *models.IngredientCategory) error {
	return r.db.Save(category).Error
}

// DeleteCategory 删除配料分类
func (r *GormIngredientRepository) DeleteCategory(id uint) error {
	return r.db.Delete(&models.IngredientCategory{}, id).Error
}

// List 配料列表，categoryID 为 0 时返回全部
func (r *GormIngredientRepository) List(categoryID uint) ([]models.Ingredient, error) {
	query := r.db.Preload("Category")
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	var ingredients []models.Ingredient
	if err := query.Order("category_id ASC, id ASC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetByID 获取配料（不存在返回 nil）
func (r *GormIngredientRepository) GetByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ingredient, nil
}

// GetByIDs 批量获取配料
func (r *GormIngredientRepository) GetByIDs(ids []uint) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return []models.Ingredient{}, nil
	}
	var ingredients []models.Ingredient
	if err := r.db.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Create 创建配料
func (r *GormIngredientRepository) Create(ingredient *models.Ingredient) error {
	return r.db.Create(ingredient).Error
}

// Update 更新配料
func (r *GormIngredientRepository) Update(ingredient *models.Ingredient) error {
	return r.db.Omit("Category").Save(ingredient).Error
}

// Delete 删除配料
func (r *GormIngredientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Ingredient{}, id).Error
}
