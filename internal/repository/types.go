package repository

import "time"

// ProductListFilter 查询菜品列表的过滤条件
type ProductListFilter struct {
	Page          int
	PageSize      int
	CategoryID    uint
	Search        string
	OnlyAvailable bool
	OnlyFeatured  bool
}

// SpecialMealListFilter 查询套餐列表的过滤条件
type SpecialMealListFilter struct {
	Page          int
	PageSize      int
	OnlyAvailable bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	Status      string
	Phone       string
	Keyword     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// FeedbackListFilter 查询评价列表的过滤条件
type FeedbackListFilter struct {
	Page     int
	PageSize int
	Rating   int
	IsRead   *bool
}

// OrderLatestMeta 后台轮询用的最新订单信息
type OrderLatestMeta struct {
	LastID uint  `json:"last_id"`
	Count  int64 `json:"count"`
}
