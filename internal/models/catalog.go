package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 菜品分类
type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`                    // 主键
	Title       string         `gorm:"type:varchar(100);not null" json:"title"` // 分类名称
	Description string         `gorm:"type:text" json:"description"`            // 分类描述
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`       // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除时间

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // 分类下菜品
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// Product 菜品
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // 主键
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`                  // 分类ID
	Name        string         `gorm:"type:varchar(200);not null" json:"name"`             // 名称
	Description string         `gorm:"type:text" json:"description"`                       // 描述
	Image       string         `gorm:"type:varchar(500)" json:"image"`                     // 图片路径
	Price       Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 当前单价
	IsAvailable bool           `gorm:"not null;index" json:"is_available"`                 // 是否可售
	IsFeatured  bool           `gorm:"default:false;index" json:"is_featured"`             // 是否推荐
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// IngredientCategory 配料分类（定制页按 DisplayOrder 分组展示）
type IngredientCategory struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`
	DisplayOrder int            `gorm:"default:0;index" json:"display_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (IngredientCategory) TableName() string {
	return "ingredient_categories"
}

// Ingredient 配料
type Ingredient struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	Price       Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	IsAvailable bool           `gorm:"not null;index" json:"is_available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category *IngredientCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName 指定表名
func (Ingredient) TableName() string {
	return "ingredients"
}

// SpecialMeal 可定制套餐
type SpecialMeal struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(200);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Image       string         `gorm:"type:varchar(500)" json:"image"`
	BasePrice   Money          `gorm:"type:decimal(10,2);not null;default:0" json:"base_price"` // 基础价（不含配料）
	IsAvailable bool           `gorm:"not null;index" json:"is_available"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Ingredients []SpecialMealIngredient `gorm:"foreignKey:SpecialMealID" json:"ingredients,omitempty"`
}

// TableName 指定表名
func (SpecialMeal) TableName() string {
	return "special_meals"
}

// SpecialMealIngredient 套餐可选配料关联
type SpecialMealIngredient struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	SpecialMealID uint      `gorm:"not null;uniqueIndex:idx_meal_ingredient" json:"special_meal_id"`
	IngredientID  uint      `gorm:"not null;uniqueIndex:idx_meal_ingredient" json:"ingredient_id"`
	IsDefault     bool      `gorm:"default:false" json:"is_default"`        // 默认勾选
	MaxQuantity   int       `gorm:"not null;default:1" json:"max_quantity"` // 单个套餐内最多份数
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// TableName 指定表名
func (SpecialMealIngredient) TableName() string {
	return "special_meal_ingredients"
}
