package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-contacts/internal/core/auth"
	"go-gin-contacts/internal/transport/http/ez"
	mdw "go-gin-contacts/internal/transport/http/middleware"
)

func NewAdminEngine(l *zap.Logger, lim Limits, jwter *auth.JWTer, reg *Registry) *gin.Engine {
	lim.PerIP = true
	r := baseEngine(l, lim)

	// 管理端 v1（统一要求 admin 角色）
	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, auth.RoleAdmin))

	reg.MountAdmin(ez.New(admin, l))
	return r
}
