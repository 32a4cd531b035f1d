package cache

import (
	"context"
	"testing"
	"time"

	"github.com/resto-next/internal/config"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	if Enabled() || Client() != nil {
		t.Fatalf("cache should be disabled")
	}
	ctx := context.Background()
	var dest map[string]interface{}
	hit, err := GetMenu(ctx, &dest)
	if err != nil || hit {
		t.Fatalf("disabled cache should miss silently, hit=%v err=%v", hit, err)
	}
	if err := SetMenu(ctx, map[string]string{"a": "b"}, time.Minute); err != nil {
		t.Fatalf("disabled set should be a no-op: %v", err)
	}
	if err := InvalidateCatalog(ctx, 1, 2); err != nil {
		t.Fatalf("disabled invalidate should be a no-op: %v", err)
	}
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	redisPrefix = "test"
	t.Cleanup(func() { redisPrefix = "" })
	if got := BuildKey("catalog:menu"); got != "test:catalog:menu" {
		t.Fatalf("unexpected key %s", got)
	}
	if got := SpecialMealDetailKey(3); got != "catalog:special_meal:3" {
		t.Fatalf("unexpected meal key %s", got)
	}
	redisPrefix = ""
	if got := BuildKey(" "); got != "resto" {
		t.Fatalf("empty key should fall back to default prefix, got %s", got)
	}
}
