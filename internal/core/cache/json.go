package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// errNotFound 回源返回 nil 时用它跳过写缓存，避免随机 token 把 redis 撑满
var errNotFound = errors.New("cache: source returned nothing")

// GetOrLoadJSON 读缓存或回源；回源结果为 nil 时返回 (nil, nil) 且不缓存
func GetOrLoadJSON[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	b, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		if v == nil {
			return nil, errNotFound
		}
		return json.Marshal(v)
	})
	switch {
	case errors.Is(err, errNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(b, out); err != nil {
		// 脏数据按未命中处理
		return load(ctx)
	}
	return out, nil
}
