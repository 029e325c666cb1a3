package redis

import (
	"context"
	"testing"

	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

func TestTreeKey(t *testing.T) {
	if got := TreeKey("nav:tree", "abc"); got != "nav:tree:abc" {
		t.Fatalf("unexpected key: %q", got)
	}
}

func TestNewTreeCacheRequiresAddr(t *testing.T) {
	if _, err := NewTreeCache(logger.Nop(), Options{}); err == nil {
		t.Fatalf("expected error without an address")
	}
	if _, err := NewTreeCache(nil, Options{Addr: "localhost:6379"}); err == nil {
		t.Fatalf("expected error without a logger")
	}
}

func TestNopTreeCache(t *testing.T) {
	c := NopTreeCache()
	ctx := context.Background()
	if err := c.Set(ctx, "m", []byte("{}")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "m"); ok || err != nil {
		t.Fatalf("Get: expected miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Invalidate(ctx, "m"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
}
