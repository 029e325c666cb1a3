package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

// TreeCache stores the rendered JSON tree of a navigation menu.
type TreeCache interface {
	Get(ctx context.Context, menuID string) ([]byte, bool, error)
	Set(ctx context.Context, menuID string, payload []byte) error
	Invalidate(ctx context.Context, menuID string) error
	Close() error
}

type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

type treeCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewTreeCache(log *logger.Logger, opts Options) (TreeCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := strings.TrimSpace(opts.Prefix)
	if prefix == "" {
		prefix = "nav:tree"
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &treeCache{
		log:    log.With("service", "RedisTreeCache"),
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

func TreeKey(prefix, menuID string) string {
	return prefix + ":" + menuID
}

func (c *treeCache) Get(ctx context.Context, menuID string) ([]byte, bool, error) {
	raw, err := c.rdb.Get(ctx, TreeKey(c.prefix, menuID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (c *treeCache) Set(ctx context.Context, menuID string, payload []byte) error {
	return c.rdb.Set(ctx, TreeKey(c.prefix, menuID), payload, c.ttl).Err()
}

func (c *treeCache) Invalidate(ctx context.Context, menuID string) error {
	if err := c.rdb.Del(ctx, TreeKey(c.prefix, menuID)).Err(); err != nil {
		c.log.Warn("tree cache invalidate failed", "menu_id", menuID, "error", err)
		return err
	}
	return nil
}

func (c *treeCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

type nopCache struct{}

// NopTreeCache never stores anything; used when Redis is not configured.
func NopTreeCache() TreeCache { return nopCache{} }

func (nopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (nopCache) Set(context.Context, string, []byte) error         { return nil }
func (nopCache) Invalidate(context.Context, string) error          { return nil }
func (nopCache) Close() error                                      { return nil }
