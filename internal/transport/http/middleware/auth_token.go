package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-contacts/internal/core/apperr"
	"go-gin-contacts/internal/domain"
	resp "go-gin-contacts/internal/transport/http/response"
)

const (
	HeaderAPIToken = "X-API-TOKEN"
	keyUser        = "currentUser"
)

// TokenAuthenticator 由 service.AuthService 实现
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// AuthToken 解析 X-API-TOKEN；缺失、未知、过期都是 401
func AuthToken(a TokenAuthenticator, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := a.Authenticate(c.Request.Context(), c.GetHeader(HeaderAPIToken))
		if err != nil {
			status := apperr.StatusOf(err)
			if status >= http.StatusInternalServerError {
				l.Error("authenticate", zap.String("rid", c.GetString(KeyRequestID)), zap.Error(err))
				c.AbortWithStatusJSON(status, resp.Error(resp.CodeServerError, ""))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, ""))
			return
		}
		c.Set(keyUser, u)
		c.Next()
	}
}

// CurrentUser 未经过 AuthToken 时返回 nil
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(keyUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
