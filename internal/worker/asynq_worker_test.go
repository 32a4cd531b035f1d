package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/resto-next/internal/models"
	"github.com/resto-next/internal/provider"
	"github.com/resto-next/internal/queue"
	"github.com/resto-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	container := &provider.Container{OrderRepo: repository.NewOrderRepository(db)}
	return NewConsumer(container), db
}

func TestHandleOrderCreated(t *testing.T) {
	consumer, db := setupConsumerTest(t)
	order := &models.Order{
		SessionKey:    "sess-worker",
		CustomerPhone: "0550000000",
		TotalPrice:    models.NewMoneyFromInt(700),
		Currency:      "DA",
		Status:        "pending",
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Pizza", Quantity: 2, UnitPrice: models.NewMoneyFromInt(350), TotalPrice: models.NewMoneyFromInt(700)},
		},
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	task, err := queue.NewOrderCreatedTask(queue.OrderCreatedPayload{OrderID: order.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderCreated(context.Background(), task); err != nil {
		t.Fatalf("handle order created failed: %v", err)
	}

	missing, _ := queue.NewOrderCreatedTask(queue.OrderCreatedPayload{OrderID: order.ID + 100})
	if err := consumer.handleOrderCreated(context.Background(), missing); err != nil {
		t.Fatalf("missing order should be skipped, got %v", err)
	}

	empty, _ := queue.NewOrderCreatedTask(queue.OrderCreatedPayload{})
	if err := consumer.handleOrderCreated(context.Background(), empty); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}
}

func TestHandleOrderStatusChangedBadPayload(t *testing.T) {
	consumer, _ := setupConsumerTest(t)
	task := asynq.NewTask(queue.TaskOrderStatusChanged, []byte("{bad json"))
	if err := consumer.handleOrderStatusChanged(context.Background(), task); err == nil {
		t.Fatalf("invalid payload should return error")
	}
}

func TestRegisterSkipsNil(t *testing.T) {
	var consumer *Consumer
	consumer.Register(asynq.NewServeMux())
	if err := consumer.handleOrderCreated(context.Background(), nil); err != nil {
		t.Fatalf("nil consumer should be skipped, got %v", err)
	}
}
