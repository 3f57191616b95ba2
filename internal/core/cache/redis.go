package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 封装 redis 客户端；目前主要给鉴权接口的固定窗口限流用
type Cache struct {
	RDB *redis.Client
}

func New(addr, pass string, db int) *Cache {
	return &Cache{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
	}
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.RDB.Ping(ctx).Err()
}

func (c *Cache) Close() error { return c.RDB.Close() }

// Hit 固定窗口计数：INCR + 首次命中时设置过期，返回窗口内累计次数。
// 多副本共用同一个 redis 时限流口径一致。
func (c *Cache) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.RDB.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
