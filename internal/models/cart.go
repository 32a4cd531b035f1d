package models

import "time"

// Cart 访客购物车，按 session key 唯一；下单后保留空车
type Cart struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SessionKey string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"session_key"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Items        []CartItem        `gorm:"foreignKey:CartID" json:"items,omitempty"`
	SpecialMeals []CartSpecialMeal `gorm:"foreignKey:CartID" json:"special_meals,omitempty"`
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// CartItem 普通菜品行
type CartItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CartID     uint      `gorm:"not null;index" json:"cart_id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	TotalPrice Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"` // 单价 × 数量
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}

// CartSpecialMeal 定制套餐行，同一套餐每次加入都是新行
type CartSpecialMeal struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CartID        uint      `gorm:"not null;index" json:"cart_id"`
	SpecialMealID uint      `gorm:"not null;index" json:"special_meal_id"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	TotalPrice    Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"` // (基础价 + 配料) × 数量
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	SpecialMeal *SpecialMeal                `gorm:"foreignKey:SpecialMealID" json:"special_meal,omitempty"`
	Ingredients []CartSpecialMealIngredient `gorm:"foreignKey:CartSpecialMealID" json:"ingredients,omitempty"`
}

// TableName 指定表名
func (CartSpecialMeal) TableName() string {
	return "cart_special_meals"
}

// CartSpecialMealIngredient 套餐行的配料选择
type CartSpecialMealIngredient struct {
	ID                uint `gorm:"primarykey" json:"id"`
	CartSpecialMealID uint `gorm:"not null;index" json:"cart_special_meal_id"`
	IngredientID      uint `gorm:"not null;index" json:"ingredient_id"`
	Quantity          int  `gorm:"not null" json:"quantity"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// TableName 指定表名
func (CartSpecialMealIngredient) TableName() string {
	return "cart_special_meal_ingredients"
}
