// Package service holds the business rules: validation, ownership scoping,
// transactions and projection to response DTOs. Handlers stay thin.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-gin-contacts/internal/core/apperr"
	"go-gin-contacts/internal/core/cache"
	"go-gin-contacts/internal/core/events"
)

const (
	msgInternal        = "internal server error"
	msgUnauthorized    = "Unauthorized"
	msgBadCredentials  = "Username or password is wrong"
	msgUserRegistered  = "Username already registered"
	msgUserNotFound    = "User not found"
	msgContactNotFound = "Contact not found"
	msgContactMissing  = "Contact is not found"
	msgAddressMissing  = "Address is not found"
)

// DefaultTokenTTL 登录 token 固定有效期
const DefaultTokenTTL = 30 * 24 * time.Hour

// Deps 各个 service 共用的依赖；Tokens / Events 可为空
type Deps struct {
	Tokens *cache.TokenCache
	Events events.Publisher
	Log    *zap.Logger
}

func (d Deps) normalized() Deps {
	if d.Events == nil {
		d.Events = events.Nop{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return d
}

func internalErr(err error) error { return apperr.Internal(msgInternal, err) }

// publish 事务提交后调用；失败只记日志
func (d Deps) publish(ctx context.Context, e events.Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	if err := d.Events.Publish(ctx, e); err != nil {
		d.Log.Warn("publish event failed", zap.String("type", e.Type), zap.Error(err))
	}
}

// forget 清掉缓存里的旧 token；redis 出错不影响主流程
func (d Deps) forget(ctx context.Context, token *string) {
	if d.Tokens == nil || token == nil || *token == "" {
		return
	}
	if err := d.Tokens.Forget(ctx, *token); err != nil {
		d.Log.Warn("token cache invalidate failed", zap.Error(err))
	}
}
