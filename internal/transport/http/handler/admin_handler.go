package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-gin-contacts/internal/domain"
	"go-gin-contacts/internal/service"
	"go-gin-contacts/internal/transport/http/ez"
	mdw "go-gin-contacts/internal/transport/http/middleware"
	resp "go-gin-contacts/internal/transport/http/response"
)

// AdminHandler 挂在 /admin/v1，分组已校验 admin 角色
type AdminHandler struct {
	admin *service.AdminService
	l     *zap.Logger
}

func NewAdminHandler(admin *service.AdminService, l *zap.Logger) *AdminHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &AdminHandler{admin: admin, l: l}
}

func (h *AdminHandler) MountAdmin(admin ez.EZ) {
	// --- GET /admin/v1/users  用户列表 ---
	ez.RegisterAction(admin, ez.Action[service.ListUsersRequest, ez.Page[service.AdminUserRow]]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, _ *domain.User, in *service.ListUsersRequest) (ez.Page[service.AdminUserRow], error) {
			p, err := h.admin.ListUsers(c.Request.Context(), in)
			if err != nil {
				return ez.Page[service.AdminUserRow]{}, err
			}
			return ez.Page[service.AdminUserRow]{
				Items:  p.Items,
				Paging: resp.Paging{CurrentPage: p.CurrentPage, TotalPage: p.TotalPage, Size: p.Size},
			}, nil
		},
	})

	// --- DELETE /admin/v1/users/:username/token  强制下线 ---
	ez.RegisterAction(admin, ez.Action[userPath, string]{
		Method: http.MethodDelete,
		Path:   "/users/:username/token",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *domain.User, in *userPath) (string, error) {
			if err := h.admin.RevokeToken(c.Request.Context(), in.Username); err != nil {
				return "", err
			}
			fields := []zap.Field{zap.String("username", in.Username)}
			if cl := mdw.CurrentOperator(c); cl != nil {
				fields = append(fields, zap.String("operator", cl.Operator()), zap.String("jti", cl.ID))
			}
			h.l.Info("token revoked", fields...)
			return okBody, nil
		},
	})
}
