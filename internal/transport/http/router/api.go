package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-contacts/internal/transport/http/ez"
	mdw "go-gin-contacts/internal/transport/http/middleware"
)

// NewAPIEngine 用户端：/api 下注册、登录公开，其余需要 X-API-TOKEN
func NewAPIEngine(l *zap.Logger, lim Limits, authn mdw.TokenAuthenticator, reg *Registry) *gin.Engine {
	r := baseEngine(l, lim)

	api := r.Group("/api")

	// 鉴权分组：同一前缀，多一层 token 解析
	authed := api.Group("")
	authed.Use(mdw.AuthToken(authn, l))

	reg.MountAPI(ez.New(api, l), ez.New(authed, l))
	return r
}
