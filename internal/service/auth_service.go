package service

import (
	"context"
	"time"

	"go-gin-contacts/internal/core/apperr"
	"go-gin-contacts/internal/core/validation"
	"go-gin-contacts/internal/domain"
	"go-gin-contacts/pkg/utils"
)

type AuthService struct {
	store domain.Store
	deps  Deps
	ttl   time.Duration
	now   func() time.Time
}

func NewAuthService(store domain.Store, ttl time.Duration, deps Deps) *AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &AuthService{store: store, deps: deps.normalized(), ttl: ttl, now: time.Now}
}

// Login 用户不存在与密码错误返回同一文案
func (s *AuthService) Login(ctx context.Context, req *LoginUserRequest) (*TokenResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	var out *TokenResponse
	var old *string
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		u, err := tx.Users().FindByUsername(ctx, req.Username)
		if err != nil {
			return internalErr(err)
		}
		if u == nil || !utils.CheckPassword(req.Password, u.Password) {
			return apperr.Unauthorized(msgBadCredentials)
		}
		old = u.Token
		token := utils.NewToken()
		expiredAt := s.now().UnixMilli() + s.ttl.Milliseconds()
		u.SetToken(token, expiredAt)
		if err := tx.Users().Update(ctx, u); err != nil {
			return internalErr(err)
		}
		out = &TokenResponse{Token: token, ExpiredAt: expiredAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.deps.forget(ctx, old)
	return out, nil
}

// Logout 清空 token 与过期时间
func (s *AuthService) Logout(ctx context.Context, user *domain.User) error {
	var old *string
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		u, err := tx.Users().FindByUsername(ctx, user.Username)
		if err != nil {
			return internalErr(err)
		}
		if u == nil {
			return apperr.Unauthorized(msgUnauthorized)
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

// Authenticate X-API-TOKEN -> 用户；每次都按当前时间判断过期
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperr.Unauthorized(msgUnauthorized)
	}
	load := func(ctx context.Context) (*domain.User, error) {
		return s.store.Users().FindByToken(ctx, token)
	}

	var (
		u   *domain.User
		err error
	)
	if s.deps.Tokens != nil {
		u, err = s.deps.Tokens.User(ctx, token, load)
	} else {
		u, err = load(ctx)
	}
	if err != nil {
		return nil, internalErr(err)
	}
	if u == nil || u.Token == nil || *u.Token != token || u.TokenExpired(s.now().UnixMilli()) {
		return nil, apperr.Unauthorized(msgUnauthorized)
	}
	return u, nil
}
