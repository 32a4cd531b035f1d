package service

import (
	"context"
	"sort"
	"time"

	"github.com/resto-next/internal/cache"
	"github.com/resto-next/internal/logger"
	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/repository"
)

// Menu 前台菜单：分类（含可售菜品）+ 推荐菜品
type Menu struct {
	Categories []models.Category `json:"categories"`
	Featured   []models.Product  `json:"featured"`
}

// MealIngredientOption 定制页的配料选项
type MealIngredientOption struct {
	IngredientID uint         `json:"ingredient_id"`
	Name         string       `json:"name"`
	Price        models.Money `json:"price"`
	IsDefault    bool         `json:"is_default"`
	MaxQuantity  int          `json:"max_quantity"`
}

// IngredientGroup 按配料分类分组的选项
type IngredientGroup struct {
	CategoryID   uint                   `json:"category_id"`
	Name         string                 `json:"name"`
	DisplayOrder int                    `json:"display_order"`
	Options      []MealIngredientOption `json:"options"`
}

// SpecialMealDetail 套餐定制页数据
type SpecialMealDetail struct {
	Meal   models.SpecialMeal `json:"meal"`
	Groups []IngredientGroup  `json:"groups"`
}

// CatalogServiceOptions 菜单服务配置
type CatalogServiceOptions struct {
	CacheTTL      time.Duration
	FeaturedLimit int
}

// CatalogService 前台菜单查询（Redis 缓存）
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	mealRepo     repository.SpecialMealRepository
	options      CatalogServiceOptions
}

// NewCatalogService 创建菜单服务
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, mealRepo repository.SpecialMealRepository, options CatalogServiceOptions) *CatalogService {
	if options.CacheTTL <= 0 {
		options.CacheTTL = 5 * time.Minute
	}
	if options.FeaturedLimit <= 0 {
		options.FeaturedLimit = 4
	}
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		mealRepo:     mealRepo,
		options:      options,
	}
}

// Menu 获取前台菜单
func (s *CatalogService) Menu(ctx context.Context) (*Menu, error) {
	var cached Menu
	hit, err := cache.GetMenu(ctx, &cached)
	if err != nil {
		logger.Warnw("catalog_menu_cache_get_failed", "error", err)
	}
	if hit {
		return &cached, nil
	}

	categories, err := s.categoryRepo.ListWithProducts(true)
	if err != nil {
		return nil, err
	}
	featured, err := s.productRepo.ListFeatured(s.options.FeaturedLimit)
	if err != nil {
		return nil, err
	}
	menu := &Menu{Categories: categories, Featured: featured}
	if err := cache.SetMenu(ctx, menu, s.options.CacheTTL); err != nil {
		logger.Warnw("catalog_menu_cache_set_failed", "error", err)
	}
	return menu, nil
}

// ListSpecialMeals 可售套餐列表
func (s *CatalogService) ListSpecialMeals(ctx context.Context) ([]models.SpecialMeal, error) {
	var cached []models.SpecialMeal
	hit, err := cache.GetSpecialMeals(ctx, &cached)
	if err != nil {
		logger.Warnw("catalog_special_meals_cache_get_failed", "error", err)
	}
	if hit {
		return cached, nil
	}
	meals, _, err := s.mealRepo.List(repository.SpecialMealListFilter{OnlyAvailable: true})
	if err != nil {
		return nil, err
	}
	if err := cache.SetSpecialMeals(ctx, meals, s.options.CacheTTL); err != nil {
		logger.Warnw("catalog_special_meals_cache_set_failed", "error", err)
	}
	return meals, nil
}

// GetSpecialMealDetail 套餐定制页：可选配料按分类展示顺序分组
func (s *CatalogService) GetSpecialMealDetail(ctx context.Context, id uint) (*SpecialMealDetail, error) {
	key := cache.SpecialMealDetailKey(id)
	var cached SpecialMealDetail
	hit, err := cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.Warnw("catalog_special_meal_cache_get_failed", "special_meal_id", id, "error", err)
	}
	if hit {
		return &cached, nil
	}

	meal, err := s.mealRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if meal == nil || !meal.IsAvailable {
		return nil, ErrSpecialMealNotAvailable
	}
	detail := &SpecialMealDetail{Meal: *meal, Groups: groupMealIngredients(meal.Ingredients)}
	detail.Meal.Ingredients = nil

	if err := cache.SetJSON(ctx, key, detail, s.options.CacheTTL); err != nil {
		logger.Warnw("catalog_special_meal_cache_set_failed", "special_meal_id", id, "error", err)
	}
	return detail, nil
}

func groupMealIngredients(links []models.SpecialMealIngredient) []IngredientGroup {
	groups := make([]IngredientGroup, 0)
	index := make(map[uint]int)
	for _, link := range links {
		ingredient := link.Ingredient
		if ingredient == nil || !ingredient.IsAvailable {
			continue
		}
		pos, ok := index[ingredient.CategoryID]
		if !ok {
			group := IngredientGroup{CategoryID: ingredient.CategoryID}
			if ingredient.Category != nil {
				group.Name = ingredient.Category.Name
				group.DisplayOrder = ingredient.Category.DisplayOrder
			}
			pos = len(groups)
			index[ingredient.CategoryID] = pos
			groups = append(groups, group)
		}
		groups[pos].Options = append(groups[pos].Options, MealIngredientOption{
			IngredientID: ingredient.ID,
			Name:         ingredient.Name,
			Price:        ingredient.Price,
			IsDefault:    link.IsDefault,
			MaxQuantity:  link.MaxQuantity,
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].DisplayOrder != groups[j].DisplayOrder {
			return groups[i].DisplayOrder < groups[j].DisplayOrder
		}
		return groups[i].CategoryID < groups[j].CategoryID
	})
	return groups
}

// invalidateCatalogCache 菜单数据写入后清理缓存，失败只记录日志
func invalidateCatalogCache(mealIDs ...uint) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := cache.InvalidateCatalog(ctx, mealIDs...); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "special_meal_ids", mealIDs, "error", err)
	}
}
