package service

import (
	"strings"

	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/repository"
)

// IngredientService 配料与配料分类管理
type IngredientService struct {
	repo repository.IngredientRepository
}

// NewIngredientService 创建配料服务
func NewIngredientService(repo repository.IngredientRepository) *IngredientService {
	return &IngredientService{repo: repo}
}

// IngredientCategoryInput 配料分类输入
type IngredientCategoryInput struct {
	Name         string
	DisplayOrder int
}

// IngredientInput 配料输入
type IngredientInput struct {
	CategoryID  uint
	Name        string
	Price       models.Money
	IsAvailable bool
}

// ListCategories 配料分类列表
func (s *IngredientService) ListCategories() ([]models.IngredientCategory, error) {
	return s.repo.ListCategories()
}

// CreateCategory 创建配料分类
func (s *IngredientService) CreateCategory(input IngredientCategoryInput) (*models.IngredientCategory, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCatalogNameRequired
	}
	category := &models.IngredientCategory{Name: name, DisplayOrder: input.DisplayOrder}
	if err := s.repo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory 更新配料分类（影响定制页分组顺序）
func (s *IngredientService) UpdateCategory(id uint, input IngredientCategoryInput) (*models.IngredientCategory, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCatalogNameRequired
	}
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrIngredientCategoryNotFound
	}
	category.Name = name
	category.DisplayOrder = input.DisplayOrder
	if err := s.repo.UpdateCategory(category); err != nil {
		return nil, err
	}
	invalidateCatalogCache()
	return category, nil
}

// DeleteCategory 删除配料分类
func (s *IngredientService) DeleteCategory(id uint) error {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrIngredientCategoryNotFound
	}
	return s.repo.DeleteCategory(id)
}

// List 配料列表
func (s *IngredientService) List(categoryID uint) ([]models.Ingredient, error) {
	return s.repo.List(categoryID)
}

// Create 创建配料
func (s *IngredientService) Create(input IngredientInput) (*models.Ingredient, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	ingredient := &models.Ingredient{
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Price:       models.NewMoney(input.Price.Decimal),
		IsAvailable: input.IsAvailable,
	}
	if err := s.repo.Create(ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Update 更新配料价格或可售状态
func (s *IngredientService) Update(id uint, input IngredientInput) (*models.Ingredient, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	ingredient, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, ErrIngredientNotFound
	}
	ingredient.CategoryID = input.CategoryID
	ingredient.Name = strings.TrimSpace(input.Name)
	ingredient.Price = models.NewMoney(input.Price.Decimal)
	ingredient.IsAvailable = input.IsAvailable
	if err := s.repo.Update(ingredient); err != nil {
		return nil, err
	}
	invalidateCatalogCache()
	return ingredient, nil
}

// Delete 删除配料
func (s *IngredientService) Delete(id uint) error {
	ingredient, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ingredient == nil {
		return ErrIngredientNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	invalidateCatalogCache()
	return nil
}

func (s *IngredientService) validate(input IngredientInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrCatalogNameRequired
	}
	if input.Price.IsNegative() {
		return ErrCatalogPriceInvalid
	}
	category, err := s.repo.GetCategoryByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrIngredientCategoryNotFound
	}
	return nil
}
