package redis

import (
	"context"
	"testing"
)

func TestTextKeyDeterministic(t *testing.T) {
	k1 := TextKey("summary", "금리 인상 뉴스")
	k2 := TextKey("summary", "금리 인상 뉴스")
	if k1 != k2 {
		t.Errorf("TextKey not deterministic: %s != %s", k1, k2)
	}

	k3 := TextKey("themes", "금리 인상 뉴스")
	if k1 == k3 {
		t.Error("different kinds should produce different keys")
	}

	k4 := TextKey("summary", "다른 텍스트")
	if k1 == k4 {
		t.Error("different texts should produce different keys")
	}
}

func TestDisabledCacheIsMiss(t *testing.T) {
	cache := NewCache(Disabled(), "fintel")
	ctx := context.Background()

	var dest string
	found, err := cache.Get(ctx, "any", &dest)
	if err != nil {
		t.Fatalf("Get on disabled cache: %v", err)
	}
	if found {
		t.Error("disabled cache should always miss")
	}

	// Set은 no-op이어야 함
	if err := cache.Set(ctx, "any", "value", TTLSummary); err != nil {
		t.Errorf("Set on disabled cache: %v", err)
	}
}
