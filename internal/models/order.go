package models

import "time"

// Order 订单（下单时的价格快照，不随菜单变动）
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	SessionKey      string    `gorm:"type:varchar(64);index;not null" json:"-"`
	CustomerName    string    `gorm:"type:varchar(100)" json:"customer_name"`
	CustomerPhone   string    `gorm:"type:varchar(32);index;not null" json:"customer_phone"`
	CustomerAddress string    `gorm:"type:text" json:"customer_address"`
	TotalPrice      Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`
	Currency        string    `gorm:"type:varchar(10);not null;default:'DA'" json:"currency"`
	Status          string    `gorm:"type:varchar(20);index;not null" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Items        []OrderItem        `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	SpecialMeals []OrderSpecialMeal `gorm:"foreignKey:OrderID" json:"special_meals,omitempty"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单菜品行
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(200);not null" json:"product_name"` // 名称快照
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   Money     `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`  // 单价快照
	TotalPrice  Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"` // 小计快照
	CreatedAt   time.Time `json:"created_at"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderSpecialMeal 订单套餐行
type OrderSpecialMeal struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	OrderID       uint      `gorm:"not null;index" json:"order_id"`
	SpecialMealID uint      `gorm:"not null;index" json:"special_meal_id"`
	MealName      string    `gorm:"type:varchar(200);not null" json:"meal_name"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	BasePrice     Money     `gorm:"type:decimal(10,2);not null;default:0" json:"base_price"`
	TotalPrice    Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`

	Ingredients []OrderSpecialMealIngredient `gorm:"foreignKey:OrderSpecialMealID" json:"ingredients,omitempty"`
}

// TableName 指定表名
func (OrderSpecialMeal) TableName() string {
	return "order_special_meals"
}

// OrderSpecialMealIngredient 订单套餐配料快照
type OrderSpecialMealIngredient struct {
	ID                 uint   `gorm:"primarykey" json:"id"`
	OrderSpecialMealID uint   `gorm:"not null;index" json:"order_special_meal_id"`
	IngredientID       uint   `gorm:"not null;index" json:"ingredient_id"`
	IngredientName     string `gorm:"type:varchar(100);not null" json:"ingredient_name"`
	Quantity           int    `gorm:"not null" json:"quantity"`
	UnitPrice          Money  `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`
}

// TableName 指定表名
func (OrderSpecialMealIngredient) TableName() string {
	return "order_special_meal_ingredients"
}
