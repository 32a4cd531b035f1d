package queue

import (
	"encoding/json"

	"github.com/resto-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderCreated 新订单通知（厨房出单）
	TaskOrderCreated = constants.TaskOrderCreated
	// TaskOrderStatusChanged 订单状态变更通知
	TaskOrderStatusChanged = constants.TaskOrderStatusChanged
)

// OrderCreatedPayload 新订单任务载荷
type OrderCreatedPayload struct {
	OrderID uint `json:"order_id"`
}

// OrderStatusChangedPayload 状态变更任务载荷
type OrderStatusChangedPayload struct {
	OrderID    uint   `json:"order_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
}

// NewOrderCreatedTask 创建新订单任务
func NewOrderCreatedTask(payload OrderCreatedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCreated, body), nil
}

// NewOrderStatusChangedTask 创建状态变更任务
func NewOrderStatusChangedTask(payload OrderStatusChangedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusChanged, body), nil
}
