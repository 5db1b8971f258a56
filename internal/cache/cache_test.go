package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/mohammad-safakhou/outfitter/config"
	"github.com/mohammad-safakhou/outfitter/models"
)

func newTestCache(t *testing.T) (*Plans, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := New(context.Background(), config.CacheConfig{
		RedisAddr: mr.Addr(),
		TTL:       time.Minute,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, mr
}

func TestPlansRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	plan := models.Plan{
		Query: "летнее платье",
		Style: "casual",
		Items: []models.PlanItem{{Query: "летнее платье миди", Category: models.CategoryDressSuit}},
	}

	if _, ok := c.Get(ctx, "летнее платье"); ok {
		t.Fatalf("expected a miss before Put")
	}
	c.Put(ctx, "летнее платье", plan)

	got, ok := c.Get(ctx, "летнее платье")
	if !ok {
		t.Fatalf("expected a hit after Put")
	}
	if got.Query != plan.Query || len(got.Items) != 1 || got.Items[0].Category != models.CategoryDressSuit {
		t.Fatalf("cached plan mismatch: %#v", got)
	}

	// a differently worded query must not collide
	if _, ok := c.Get(ctx, "зимнее платье"); ok {
		t.Fatalf("unexpected hit for a different query")
	}
}

func TestPlansEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Put(ctx, "джинсы", models.Plan{Query: "джинсы", Items: []models.PlanItem{{Query: "джинсы", Category: models.CategoryBottom}}})
	mr.FastForward(2 * time.Minute)

	if _, ok := c.Get(ctx, "джинсы"); ok {
		t.Fatalf("expected the entry to expire after the TTL")
	}
}

func TestPlansCorruptEntryIsAMiss(t *testing.T) {
	c, mr := newTestCache(t)

	c.Put(context.Background(), "пальто", models.Plan{Query: "пальто", Items: []models.PlanItem{{Query: "пальто", Category: models.CategoryOuterwear}}})
	for _, key := range mr.Keys() {
		mr.Set(key, "{not json")
	}
	if _, ok := c.Get(context.Background(), "пальто"); ok {
		t.Fatalf("corrupt entries must read as misses")
	}
}

func TestNewFailsWhenRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := New(context.Background(), config.CacheConfig{RedisAddr: addr, TTL: time.Minute}); err == nil {
		t.Fatalf("expected connection error for a dead redis")
	}
}
