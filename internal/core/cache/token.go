package cache

import (
	"context"
	"time"

	"go-gin-contacts/internal/domain"
)

const tokenKeyPrefix = "auth:token:"

// 注销后第二次删除的延迟：覆盖提交前已读库、提交后才回写缓存的并发鉴权
const forgetSettle = time.Second

// TokenCache 缓存 token -> 用户；过期判断仍由调用方按当前时间做
type TokenCache struct {
	c      *Cache
	ttl    time.Duration
	settle time.Duration
	del    func(ctx context.Context, keys ...string) error
	after  func(d time.Duration, f func())
}

func NewTokenCache(c *Cache, ttl time.Duration) *TokenCache {
	return &TokenCache{
		c:      c,
		ttl:    ttl,
		settle: forgetSettle,
		del:    c.Del,
		after:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// userEntry domain.User 的 json tag 隐藏了口令与 token，缓存需要完整字段
type userEntry struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	Name           string  `json:"name"`
	Token          *string `json:"token"`
	TokenExpiredAt *int64  `json:"tokenExpiredAt"`
}

func toEntry(u *domain.User) *userEntry {
	if u == nil {
		return nil
	}
	return &userEntry{
		Username: u.Username, Password: u.Password, Name: u.Name,
		Token: u.Token, TokenExpiredAt: u.TokenExpiredAt,
	}
}

func (e *userEntry) user() *domain.User {
	if e == nil {
		return nil
	}
	return &domain.User{
		Username: e.Username, Password: e.Password, Name: e.Name,
		Token: e.Token, TokenExpiredAt: e.TokenExpiredAt,
	}
}

func tokenKey(token string) string { return tokenKeyPrefix + token }

func (t *TokenCache) User(ctx context.Context, token string, load func(context.Context) (*domain.User, error)) (*domain.User, error) {
	e, err := GetOrLoadJSON[userEntry](ctx, t.c, tokenKey(token), t.ttl, func(ctx context.Context) (*userEntry, error) {
		u, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return toEntry(u), nil
	})
	if err != nil {
		return nil, err
	}
	return e.user(), nil
}

// Forget 立即删除，settle 之后再删一次；残留窗口不超过 ttl
func (t *TokenCache) Forget(ctx context.Context, token string) error {
	key := tokenKey(token)
	err := t.del(ctx, key)
	t.after(t.settle, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = t.del(ctx, key)
	})
	return err
}
