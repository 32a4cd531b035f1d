package service

import (
	"strings"

	"github.com/resto-next/internal/constants"
)

var orderStatusLabels = map[string]string{
	constants.OrderStatusPending:   "En attente",
	constants.OrderStatusConfirmed: "Confirmée",
	constants.OrderStatusPreparing: "En préparation",
	constants.OrderStatusReady:     "Prête",
	constants.OrderStatusDelivered: "Livrée",
	constants.OrderStatusCancelled: "Annulée",
}

// NormalizeOrderStatus 规范化状态值，不在枚举内返回 ErrOrderStatusInvalid
func NormalizeOrderStatus(status string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if _, ok := orderStatusLabels[normalized]; !ok {
		return "", ErrOrderStatusInvalid
	}
	return normalized, nil
}

// OrderStatusLabel 状态展示文案
func OrderStatusLabel(status string) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return status
}

// OrderStatusOption 后台下拉选项
type OrderStatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OrderStatusOptions 全部状态（按展示顺序）
func OrderStatusOptions() []OrderStatusOption {
	options := make([]OrderStatusOption, 0, len(constants.OrderStatuses))
	for _, status := range constants.OrderStatuses {
		options = append(options, OrderStatusOption{Value: status, Label: OrderStatusLabel(status)})
	}
	return options
}
