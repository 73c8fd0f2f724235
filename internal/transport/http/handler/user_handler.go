package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-contacts/internal/domain"
	"go-gin-contacts/internal/service"
	"go-gin-contacts/internal/transport/http/ez"
)

type UserHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

func NewUserHandler(users *service.UserService, auth *service.AuthService) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

func (h *UserHandler) Priority() int { return 10 }

// MountAPI 注册、登录是公开的，其余走 X-API-TOKEN
func (h *UserHandler) MountAPI(public, authed ez.EZ) {
	ez.RegisterAction(public, ez.Action[service.RegisterUserRequest, string]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, _ *domain.User, in *service.RegisterUserRequest) (string, error) {
			if err := h.users.Register(c.Request.Context(), in); err != nil {
				return "", err
			}
			return okBody, nil
		},
	})

	ez.RegisterAction(public, ez.Action[service.LoginUserRequest, *service.TokenResponse]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, _ *domain.User, in *service.LoginUserRequest) (*service.TokenResponse, error) {
			return h.auth.Login(c.Request.Context(), in)
		},
	})

	ez.RegisterAction(authed, ez.Action[struct{}, *service.UserResponse]{
		Method: http.MethodGet,
		Path:   "/users/current",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, _ *struct{}) (*service.UserResponse, error) {
			return h.users.Get(c.Request.Context(), u), nil
		},
	})

	ez.RegisterAction(authed, ez.Action[service.UpdateUserRequest, *service.UserResponse]{
		Method: http.MethodPatch,
		Path:   "/users/current",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *service.UpdateUserRequest) (*service.UserResponse, error) {
			return h.users.Update(c.Request.Context(), u, in)
		},
	})

	ez.RegisterAction(authed, ez.Action[struct{}, string]{
		Method: http.MethodDelete,
		Path:   "/auth/logout",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, _ *struct{}) (string, error) {
			if err := h.auth.Logout(c.Request.Context(), u); err != nil {
				return "", err
			}
			return okBody, nil
		},
	})
}
