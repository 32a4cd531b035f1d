package main

import (
	"github.com/resto-next/internal/config"
	"github.com/resto-next/internal/logger"
	"github.com/resto-next/internal/models"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	Name     string
	Price    string
	Featured bool
}

type seedIngredient struct {
	Name  string
	Price string
}

func money(raw string) models.Money {
	return models.NewMoney(decimal.RequireFromString(raw))
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, false, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 菜品分类与菜品
	menu := []struct {
		Title    string
		Products []seedProduct
	}{
		{Title: "Pizzas", Products: []seedProduct{
			{Name: "Pizza Margherita", Price: "500.00", Featured: true},
			{Name: "Pizza Thon", Price: "650.00"},
		}},
		{Title: "Sandwichs", Products: []seedProduct{
			{Name: "Chawarma", Price: "350.00", Featured: true},
			{Name: "Tacos poulet", Price: "450.00"},
		}},
		{Title: "Boissons", Products: []seedProduct{
			{Name: "Citronnade", Price: "150.00"},
			{Name: "Eau minérale", Price: "60.00"},
		}},
	}
	for sortOrder, section := range menu {
		category := models.Category{Title: section.Title, SortOrder: sortOrder}
		if err := models.DB.Where("title = ?", section.Title).FirstOrCreate(&category).Error; err != nil {
			stdLog.Printf("Failed to create category %s: %v", section.Title, err)
			continue
		}
		for i, item := range section.Products {
			product := models.Product{
				CategoryID:  category.ID,
				Name:        item.Name,
				Price:       money(item.Price),
				IsAvailable: true,
				IsFeatured:  item.Featured,
				SortOrder:   i,
			}
			if err := models.DB.Where("name = ?", item.Name).FirstOrCreate(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", item.Name, err)
				continue
			}
			stdLog.Printf("Product ready: %s (%s DA)", product.Name, product.Price.String())
		}
	}

	// 配料
	groups := []struct {
		Name        string
		Ingredients []seedIngredient
	}{
		{Name: "Bases", Ingredients: []seedIngredient{{Name: "Riz", Price: "0.00"}, {Name: "Frites", Price: "80.00"}}},
		{Name: "Viandes", Ingredients: []seedIngredient{{Name: "Poulet", Price: "200.00"}, {Name: "Viande hachée", Price: "250.00"}}},
		{Name: "Sauces", Ingredients: []seedIngredient{{Name: "Harissa", Price: "20.00"}, {Name: "Mayonnaise", Price: "20.00"}}},
	}
	ingredientIDs := map[string]uint{}
	for order, group := range groups {
		category := models.IngredientCategory{Name: group.Name, DisplayOrder: order}
		if err := models.DB.Where("name = ?", group.Name).FirstOrCreate(&category).Error; err != nil {
			stdLog.Printf("Failed to create ingredient category %s: %v", group.Name, err)
			continue
		}
		for _, item := range group.Ingredients {
			ingredient := models.Ingredient{
				CategoryID:  category.ID,
				Name:        item.Name,
				Price:       money(item.Price),
				IsAvailable: true,
			}
			if err := models.DB.Where("name = ?", item.Name).FirstOrCreate(&ingredient).Error; err != nil {
				stdLog.Printf("Failed to create ingredient %s: %v", item.Name, err)
				continue
			}
			ingredientIDs[item.Name] = ingredient.ID
		}
	}

	// 定制套餐
	meal := models.SpecialMeal{
		Name:        "Assiette composée",
		Description: "Composez votre assiette",
		BasePrice:   money("600.00"),
		IsAvailable: true,
	}
	if err := models.DB.Where("name = ?", meal.Name).FirstOrCreate(&meal).Error; err != nil {
		stdLog.Fatalf("Failed to create special meal: %v", err)
	}
	links := []struct {
		Ingredient  string
		MaxQuantity int
		IsDefault   bool
	}{
		{Ingredient: "Riz", MaxQuantity: 1, IsDefault: true},
		{Ingredient: "Frites", MaxQuantity: 2},
		{Ingredient: "Poulet", MaxQuantity: 2, IsDefault: true},
		{Ingredient: "Viande hachée", MaxQuantity: 2},
		{Ingredient: "Harissa", MaxQuantity: 1},
		{Ingredient: "Mayonnaise", MaxQuantity: 1},
	}
	for _, link := range links {
		ingredientID, ok := ingredientIDs[link.Ingredient]
		if !ok {
			continue
		}
		row := models.SpecialMealIngredient{
			SpecialMealID: meal.ID,
			IngredientID:  ingredientID,
			MaxQuantity:   link.MaxQuantity,
			IsDefault:     link.IsDefault,
		}
		if err := models.DB.Where("special_meal_id = ? AND ingredient_id = ?", meal.ID, ingredientID).FirstOrCreate(&row).Error; err != nil {
			stdLog.Printf("Failed to link ingredient %s: %v", link.Ingredient, err)
		}
	}

	stdLog.Printf("Seed completed")
}
