package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/resto-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  1,
		Name:        name,
		Price:       models.NewMoneyFromInt(price),
		IsAvailable: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartGetOrCreateIsIdempotent(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewCartRepository(db)

	first, err := repo.GetOrCreate("session-a")
	if err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	second, err := repo.GetOrCreate("session-a")
	if err != nil {
		t.Fatalf("second get or create failed: %v", err)
	}
	if first.ID == 0 || first.ID != second.ID {
		t.Fatalf("expected same cart id, got %d and %d", first.ID, second.ID)
	}
	var count int64
	db.Model(&models.Cart{}).Count(&count)
	if count != 1 {
		t.Fatalf("want 1 cart row got %d", count)
	}
}

func TestCartLineTotalsAndClear(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewCartRepository(db)
	cart, err := repo.GetOrCreate("session-b")
	if err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	product := createTestProduct(t, db, "Pizza", 200)

	if err := repo.CreateItem(&models.CartItem{
		CartID:     cart.ID,
		ProductID:  product.ID,
		Quantity:   2,
		TotalPrice: models.NewMoneyFromInt(400),
	}); err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	line := &models.CartSpecialMeal{
		CartID:        cart.ID,
		SpecialMealID: 9,
		Quantity:      1,
		TotalPrice:    models.NewMoneyFromInt(600),
		Ingredients: []models.CartSpecialMealIngredient{
			{IngredientID: 3, Quantity: 2},
		},
	}
	if err := repo.CreateSpecialMeal(line); err != nil {
		t.Fatalf("create special meal failed: %v", err)
	}

	totals, err := repo.LineTotals(cart.ID)
	if err != nil {
		t.Fatalf("line totals failed: %v", err)
	}
	sum := models.ZeroMoney()
	for _, total := range totals {
		sum = sum.Add(total)
	}
	if sum.String() != "1000.00" {
		t.Fatalf("want 1000.00 got %s", sum.String())
	}
	count, err := repo.CountLines(cart.ID)
	if err != nil || count != 2 {
		t.Fatalf("want 2 lines got %d err=%v", count, err)
	}

	if err := repo.ClearLines(cart.ID); err != nil {
		t.Fatalf("clear lines failed: %v", err)
	}
	count, _ = repo.CountLines(cart.ID)
	if count != 0 {
		t.Fatalf("want 0 lines after clear got %d", count)
	}
	var selections int64
	db.Model(&models.CartSpecialMealIngredient{}).Count(&selections)
	if selections != 0 {
		t.Fatalf("selections should be removed with their line, got %d", selections)
	}
	stored, err := repo.GetBySessionKey("session-b")
	if err != nil || stored == nil {
		t.Fatalf("cart row should persist after clear, err=%v", err)
	}
}

func TestCartDeleteScopedToCart(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewCartRepository(db)
	mine, _ := repo.GetOrCreate("mine")
	other, _ := repo.GetOrCreate("other")
	product := createTestProduct(t, db, "Tacos", 350)
	item := &models.CartItem{CartID: other.ID, ProductID: product.ID, Quantity: 1, TotalPrice: product.Price}
	if err := repo.CreateItem(item); err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	affected, err := repo.DeleteItem(mine.ID, item.ID)
	if err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("deleting a line from another cart must be a no-op, affected=%d", affected)
	}
	affected, err = repo.DeleteSpecialMeal(mine.ID, 12345)
	if err != nil || affected != 0 {
		t.Fatalf("unknown special meal line should be a no-op, affected=%d err=%v", affected, err)
	}
}
