package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	menuKey             = "catalog:menu"
	specialMealsKey     = "catalog:special_meals"
	specialMealDetailFm = "catalog:special_meal:%d"
)

// SpecialMealDetailKey 套餐详情缓存 key
func SpecialMealDetailKey(id uint) string {
	return fmt.Sprintf(specialMealDetailFm, id)
}

// GetMenu 读取菜单缓存
func GetMenu(ctx context.Context, dest interface{}) (bool, error) {
	return GetJSON(ctx, menuKey, dest)
}

// SetMenu 写入菜单缓存
func SetMenu(ctx context.Context, value interface{}, ttl time.Duration) error {
	return SetJSON(ctx, menuKey, value, ttl)
}

// GetSpecialMeals 读取可售套餐列表缓存
func GetSpecialMeals(ctx context.Context, dest interface{}) (bool, error) {
	return GetJSON(ctx, specialMealsKey, dest)
}

// SetSpecialMeals 写入可售套餐列表缓存
func SetSpecialMeals(ctx context.Context, value interface{}, ttl time.Duration) error {
	return SetJSON(ctx, specialMealsKey, value, ttl)
}

// InvalidateCatalog 菜单数据变更后清理缓存；mealIDs 为受影响的套餐
func InvalidateCatalog(ctx context.Context, mealIDs ...uint) error {
	keys := []string{menuKey, specialMealsKey}
	for _, id := range mealIDs {
		keys = append(keys, SpecialMealDetailKey(id))
	}
	return Del(ctx, keys...)
}
