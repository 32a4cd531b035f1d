package service

import (
	"fmt"
	"strings"

	"github.com/resto-next/internal/models"
)

// OrderSummaryLines 出单小票：每行一个菜品或套餐，例如 "1x Burger [2x Cheddar, 1x Bacon]"
func OrderSummaryLines(order *models.Order) []string {
	if order == nil {
		return nil
	}
	lines := make([]string, 0, len(order.Items)+len(order.SpecialMeals))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%dx %s", item.Quantity, item.ProductName))
	}
	for _, meal := range order.SpecialMeals {
		line := fmt.Sprintf("%dx %s", meal.Quantity, meal.MealName)
		if len(meal.Ingredients) > 0 {
			parts := make([]string, 0, len(meal.Ingredients))
			for _, ingredient := range meal.Ingredients {
				parts = append(parts, fmt.Sprintf("%dx %s", ingredient.Quantity, ingredient.IngredientName))
			}
			line += " [" + strings.Join(parts, ", ") + "]"
		}
		if notes := strings.TrimSpace(meal.Notes); notes != "" {
			line += " (" + notes + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

// OrderSummary 小票文本（换行分隔）
func OrderSummary(order *models.Order) string {
	return strings.Join(OrderSummaryLines(order), "\n")
}
