package constants

// 订单状态常量（后台可任意设置，不做流转校验）
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderStatuses 订单状态枚举（按展示顺序）
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 购物车行类型常量
const (
	LineTypeProduct     = "product"
	LineTypeSpecialMeal = "special_meal"
)

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型常量
const (
	TaskOrderCreated       = "order:created"
	TaskOrderStatusChanged = "order:status_changed"
)

// 评价分值范围
const (
	FeedbackRatingMin = 1
	FeedbackRatingMax = 5
)

// FeedbackRatingLabels 评价分值文案
var FeedbackRatingLabels = map[int]string{
	1: "Décevant",
	2: "Moyen",
	3: "Bien",
	4: "Très bien",
	5: "Excellent",
}

// DefaultCurrency 默认币种（阿尔及利亚第纳尔）
const DefaultCurrency = "DA"
