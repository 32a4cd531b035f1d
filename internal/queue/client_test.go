package queue

import (
	"encoding/json"
	"testing"

	"github.com/resto-next/internal/config"
)

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueOrderCreated(OrderCreatedPayload{OrderID: 1}); err != nil {
		t.Fatalf("disabled enqueue should be a no-op, got %v", err)
	}
	var nilClient *Client
	if err := nilClient.EnqueueOrderStatusChanged(OrderStatusChangedPayload{OrderID: 1}); err != nil {
		t.Fatalf("nil client enqueue should be a no-op, got %v", err)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" {
		t.Fatalf("unexpected addr %s", opt.Addr)
	}
	if cfg.Concurrency != 10 || cfg.Queues[CriticalQueue] != 2 {
		t.Fatalf("unexpected server config %+v", cfg)
	}

	opt, cfg = BuildServerConfig(&config.QueueConfig{Host: "redis", Port: 6380, DB: 2, Concurrency: 3, Queues: map[string]int{"default": 1}})
	if opt.Addr != "redis:6380" || opt.DB != 2 || cfg.Concurrency != 3 || len(cfg.Queues) != 1 {
		t.Fatalf("config overrides not applied: opt=%+v cfg=%+v", opt, cfg)
	}
}

func TestNewOrderStatusChangedTaskPayload(t *testing.T) {
	task, err := NewOrderStatusChangedTask(OrderStatusChangedPayload{OrderID: 7, FromStatus: "pending", ToStatus: "ready"})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if task.Type() != TaskOrderStatusChanged {
		t.Fatalf("unexpected task type %s", task.Type())
	}
	var payload OrderStatusChangedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		t.Fatalf("decode payload failed: %v", err)
	}
	if payload.OrderID != 7 || payload.ToStatus != "ready" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}
