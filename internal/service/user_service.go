package service

import (
	"context"

	"go-gin-contacts/internal/core/apperr"
	"go-gin-contacts/internal/core/events"
	"go-gin-contacts/internal/core/validation"
	"go-gin-contacts/internal/domain"
	"go-gin-contacts/pkg/utils"
)

type UserService struct {
	store domain.Store
	deps  Deps
}

func NewUserService(store domain.Store, deps Deps) *UserService {
	return &UserService{store: store, deps: deps.normalized()}
}

// Register 并发重复注册由主键兜底，表现为 500
func (s *UserService) Register(ctx context.Context, req *RegisterUserRequest) error {
	if err := validation.Validate(req); err != nil {
		return err
	}
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return internalErr(err)
	}

	err = s.store.Transaction(ctx, func(tx domain.Store) error {
		exists, err := tx.Users().Exists(ctx, req.Username)
		if err != nil {
			return internalErr(err)
		}
		if exists {
			return apperr.Conflict(msgUserRegistered)
		}
		u := &domain.User{Username: req.Username, Password: hashed, Name: req.Name}
		if err := tx.Users().Create(ctx, u); err != nil {
			return internalErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.deps.publish(ctx, events.Event{Type: events.UserRegistered, Username: req.Username, ResourceID: req.Username})
	return nil
}

func (s *UserService) Get(_ context.Context, user *domain.User) *UserResponse {
	return toUserResponse(user)
}

// Update 只覆盖非 nil 字段；密码重新哈希
func (s *UserService) Update(ctx context.Context, user *domain.User, req *UpdateUserRequest) (*UserResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var hashed string
	if req.Password != nil {
		h, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, internalErr(err)
		}
		hashed = h
	}

	var out *UserResponse
	var token *string
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		u, err := tx.Users().FindByUsername(ctx, user.Username)
		if err != nil {
			return internalErr(err)
		}
		if u == nil {
			return apperr.Unauthorized(msgUnauthorized)
		}
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Password != nil {
			u.Password = hashed
		}
		if err := tx.Users().Update(ctx, u); err != nil {
			return internalErr(err)
		}
		token = u.Token
		out = toUserResponse(u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// 缓存里的用户快照已过时
	s.deps.forget(ctx, token)
	return out, nil
}
