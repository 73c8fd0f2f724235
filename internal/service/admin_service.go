package service

import (
	"context"
	"time"

	"go-gin-contacts/internal/core/apperr"
	"go-gin-contacts/internal/core/validation"
	"go-gin-contacts/internal/domain"
)

// AdminService 运维接口：查看用户、强制下线
type AdminService struct {
	store domain.Store
	deps  Deps
	now   func() time.Time
}

func NewAdminService(store domain.Store, deps Deps) *AdminService {
	return &AdminService{store: store, deps: deps.normalized(), now: time.Now}
}

func (s *AdminService) ListUsers(ctx context.Context, req *ListUsersRequest) (*Page[AdminUserRow], error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	users, total, err := s.store.Users().List(ctx, pageOffset(req.Page, req.Size), req.Size)
	if err != nil {
		return nil, internalErr(err)
	}
	now := s.now().UnixMilli()
	rows := make([]AdminUserRow, 0, len(users))
	for i := range users {
		u := &users[i]
		rows = append(rows, AdminUserRow{
			Username:    u.Username,
			Name:        u.Name,
			TokenActive: u.Token != nil && !u.TokenExpired(now),
		})
	}
	p := newPage(rows, req.Page, req.Size, total)
	return &p, nil
}

// RevokeToken 与用户自己 logout 效果相同
func (s *AdminService) RevokeToken(ctx context.Context, username string) error {
	var old *string
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		u, err := tx.Users().FindByUsername(ctx, username)
		if err != nil {
			return internalErr(err)
		}
		if u == nil {
			return apperr.NotFound(msgUserNotFound)
		}
		old = u.Token
		u.ClearToken()
		if err := tx.Users().Update(ctx, u); err != nil {
			return internalErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.deps.forget(ctx, old)
	return nil
}
