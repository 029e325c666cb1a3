package app

import (
	"fmt"
	"strings"

	"github.com/Owhab/nexacms-sub002/internal/clients/redis"
	"github.com/Owhab/nexacms-sub002/internal/platform/localmedia"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

type Clients struct {
	TreeCache  redis.TreeCache
	MediaTools localmedia.Tools
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis
	cache := redis.NopTreeCache()
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		c, err := redis.NewTreeCache(log, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.NavCacheTTL,
		})
		if err != nil {
			return Clients{}, fmt.Errorf("init redis tree cache: %w", err)
		}
		cache = c
	} else {
		log.Info("REDIS_ADDR not set; navigation tree cache disabled")
	}

	// ffprobe
	tools := localmedia.New(log, localmedia.Options{FFProbePath: cfg.FFProbePath})

	return Clients{TreeCache: cache, MediaTools: tools}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.TreeCache != nil {
		_ = c.TreeCache.Close()
	}
}
