package service

import (
	"strings"

	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/repository"
)

// SpecialMealService 套餐管理
type SpecialMealService struct {
	repo           repository.SpecialMealRepository
	ingredientRepo repository.IngredientRepository
}

// NewSpecialMealService 创建套餐服务
func NewSpecialMealService(repo repository.SpecialMealRepository, ingredientRepo repository.IngredientRepository) *SpecialMealService {
	return &SpecialMealService{repo: repo, ingredientRepo: ingredientRepo}
}

// SpecialMealInput 套餐输入
type SpecialMealInput struct {
	Name        string
	Description string
	Image       string
	BasePrice   models.Money
	IsAvailable bool
}

// MealIngredientInput 套餐配料关联输入
type MealIngredientInput struct {
	IngredientID uint
	IsDefault    bool
	MaxQuantity  int
}

// List 后台套餐列表
func (s *SpecialMealService) List(filter repository.SpecialMealListFilter) ([]models.SpecialMeal, int64, error) {
	return s.repo.List(filter)
}

// Get 获取套餐及其配料关联
func (s *SpecialMealService) Get(id uint) (*models.SpecialMeal, error) {
	meal, err := s.repo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, ErrSpecialMealNotFound
	}
	return meal, nil
}

// Create 创建套餐
func (s *SpecialMealService) Create(input SpecialMealInput) (*models.SpecialMeal, error) {
	if err := validateSpecialMealInput(input); err != nil {
		return nil, err
	}
	meal := &models.SpecialMeal{}
	applySpecialMealInput(meal, input)
	if err := s.repo.Create(meal); err != nil {
		return nil, err
	}
	invalidateCatalogCache()
	return meal, nil
}

// Update 更新套餐
func (s *SpecialMealService) Update(id uint, input SpecialMealInput) (*models.SpecialMeal, error) {
	if err := validateSpecialMealInput(input); err != nil {
		return nil, err
	}
	meal, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, ErrSpecialMealNotFound
	}
	applySpecialMealInput(meal, input)
	if err := s.repo.Update(meal); err != nil {
		return nil, err
	}
	invalidateCatalogCache(meal.ID)
	return meal, nil
}

// Delete 删除套餐
func (s *SpecialMealService) Delete(id uint) error {
	meal, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if meal == nil {
		return ErrSpecialMealNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	invalidateCatalogCache(id)
	return nil
}

// UpsertIngredient 设置套餐可选配料（同一配料只保留一条关联）
func (s *SpecialMealService) UpsertIngredient(mealID uint, input MealIngredientInput) (*models.SpecialMealIngredient, error) {
	if input.MaxQuantity < 1 {
		return nil, ErrMaxQuantityInvalid
	}
	meal, err := s.repo.GetByID(mealID)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, ErrSpecialMealNotFound
	}
	ingredient, err := s.ingredientRepo.GetByID(input.IngredientID)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, ErrIngredientNotFound
	}
	link := &models.SpecialMealIngredient{
		SpecialMealID: mealID,
		IngredientID:  ingredient.ID,
		IsDefault:     input.IsDefault,
		MaxQuantity:   input.MaxQuantity,
	}
	if err := s.repo.UpsertLink(link); err != nil {
		return nil, err
	}
	invalidateCatalogCache(mealID)
	return s.repo.GetLink(mealID, ingredient.ID)
}

// RemoveIngredient 移除套餐配料关联
func (s *SpecialMealService) RemoveIngredient(mealID, ingredientID uint) error {
	affected, err := s.repo.DeleteLink(mealID, ingredientID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrIngredientNotFound
	}
	invalidateCatalogCache(mealID)
	return nil
}

func validateSpecialMealInput(input SpecialMealInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrCatalogNameRequired
	}
	if input.BasePrice.IsNegative() {
		return ErrCatalogPriceInvalid
	}
	return nil
}

func applySpecialMealInput(meal *models.SpecialMeal, input SpecialMealInput) {
	meal.Name = strings.TrimSpace(input.Name)
	meal.Description = strings.TrimSpace(input.Description)
	meal.Image = strings.TrimSpace(input.Image)
	meal.BasePrice = models.NewMoney(input.BasePrice.Decimal)
	meal.IsAvailable = input.IsAvailable
}
