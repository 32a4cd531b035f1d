package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type serviceFixture struct {
	db             *gorm.DB
	cartRepo       *repository.GormCartRepository
	orderRepo      *repository.GormOrderRepository
	productRepo    *repository.GormProductRepository
	mealRepo       *repository.GormSpecialMealRepository
	ingredientRepo *repository.GormIngredientRepository
	categoryRepo   *repository.GormCategoryRepository
	cart           *CartService
	order          *OrderService
}

func setupServiceTest(t *testing.T, options CartServiceOptions) *serviceFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	f := &serviceFixture{
		db:             db,
		cartRepo:       repository.NewCartRepository(db),
		orderRepo:      repository.NewOrderRepository(db),
		productRepo:    repository.NewProductRepository(db),
		mealRepo:       repository.NewSpecialMealRepository(db),
		ingredientRepo: repository.NewIngredientRepository(db),
		categoryRepo:   repository.NewCategoryRepository(db),
	}
	locker := NewCartLocker()
	f.cart = NewCartService(f.cartRepo, f.productRepo, f.mealRepo, f.ingredientRepo, locker, options)
	f.order = NewOrderService(f.orderRepo, f.cartRepo, f.productRepo, f.mealRepo, f.ingredientRepo, nil, locker, OrderServiceOptions{})
	return f
}

func (f *serviceFixture) createProduct(t *testing.T, name string, price int64, available bool) *models.Product {
	t.Helper()
	category := &models.Category{Title: "Plats"}
	if err := f.db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{
		CategoryID:  category.ID,
		Name:        name,
		Price:       models.NewMoneyFromInt(price),
		IsAvailable: available,
	}
	if err := f.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (f *serviceFixture) createMeal(t *testing.T, name string, basePrice int64, available bool) *models.SpecialMeal {
	t.Helper()
	meal := &models.SpecialMeal{Name: name, BasePrice: models.NewMoneyFromInt(basePrice), IsAvailable: available}
	if err := f.db.Create(meal).Error; err != nil {
		t.Fatalf("create meal failed: %v", err)
	}
	return meal
}

func (f *serviceFixture) createIngredient(t *testing.T, name string, price int64, available bool) *models.Ingredient {
	t.Helper()
	category := &models.IngredientCategory{Name: "Sauces", DisplayOrder: 1}
	if err := f.db.Create(category).Error; err != nil {
		t.Fatalf("create ingredient category failed: %v", err)
	}
	ingredient := &models.Ingredient{
		CategoryID:  category.ID,
		Name:        name,
		Price:       models.NewMoneyFromInt(price),
		IsAvailable: available,
	}
	if err := f.db.Create(ingredient).Error; err != nil {
		t.Fatalf("create ingredient failed: %v", err)
	}
	return ingredient
}

func (f *serviceFixture) linkIngredient(t *testing.T, mealID, ingredientID uint, maxQuantity int) {
	t.Helper()
	link := &models.SpecialMealIngredient{SpecialMealID: mealID, IngredientID: ingredientID, MaxQuantity: maxQuantity}
	if err := f.db.Create(link).Error; err != nil {
		t.Fatalf("link ingredient failed: %v", err)
	}
}

func (f *serviceFixture) cartFor(t *testing.T, sessionKey string) *models.Cart {
	t.Helper()
	cart, err := f.cart.GetOrCreateCart(sessionKey)
	if err != nil {
		t.Fatalf("get or create cart failed: %v", err)
	}
	return cart
}

func mustMoney(t *testing.T, raw string) models.Money {
	t.Helper()
	m, err := models.ParseMoney(raw)
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	return m
}
