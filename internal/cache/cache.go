package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mohammad-safakhou/outfitter/config"
	"github.com/mohammad-safakhou/outfitter/models"
)

// Plans is a redis-backed, TTL-bounded cache of interpreted plans keyed on
// the raw request text. It stores no search results: the same wording just
// stops re-billing the LLM while the entry lives.
type Plans struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

// New connects to redis and verifies the connection.
func New(ctx context.Context, cfg config.CacheConfig) (*Plans, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed (%s): %w", cfg.RedisAddr, err)
	}
	return &Plans{
		rdb:    rdb,
		ttl:    cfg.TTL,
		logger: log.New(log.Writer(), "[CACHE] ", log.LstdFlags),
	}, nil
}

func planKey(query string) string {
	sum := sha1.Sum([]byte(query))
	return "outfitter:plan:" + hex.EncodeToString(sum[:])
}

// Get returns the cached plan for the query, if any. Cache errors are
// treated as misses.
func (p *Plans) Get(ctx context.Context, query string) (models.Plan, bool) {
	raw, err := p.rdb.Get(ctx, planKey(query)).Bytes()
	if err != nil {
		if err != redis.Nil {
			p.logger.Printf("get failed: %v", err)
		}
		return models.Plan{}, false
	}
	var plan models.Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		p.logger.Printf("corrupt cache entry for %q: %v", query, err)
		return models.Plan{}, false
	}
	return plan, true
}

// Put stores a validated plan. Failures are logged and otherwise ignored:
// the cache is an optimization, never a dependency.
func (p *Plans) Put(ctx context.Context, query string, plan models.Plan) {
	raw, err := json.Marshal(plan)
	if err != nil {
		p.logger.Printf("marshal failed: %v", err)
		return
	}
	if err := p.rdb.Set(ctx, planKey(query), raw, p.ttl).Err(); err != nil {
		p.logger.Printf("set failed: %v", err)
	}
}
