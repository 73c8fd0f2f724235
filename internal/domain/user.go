package domain

import "context"

// User 以 username 为主键；Token / TokenExpiredAt 要么同时有值，要么同时为空
type User struct {
	Username       string  `gorm:"primaryKey;size:100" json:"username"`
	Password       string  `gorm:"size:100;not null" json:"-"`
	Name           string  `gorm:"size:100;not null" json:"name"`
	Token          *string `gorm:"size:100;uniqueIndex" json:"-"`
	TokenExpiredAt *int64  `json:"-"` // epoch millis
}

func (User) TableName() string { return "users" }

// SetToken 同时写 token 与过期时间
func (u *User) SetToken(token string, expiredAt int64) {
	u.Token = &token
	u.TokenExpiredAt = &expiredAt
}

func (u *User) ClearToken() {
	u.Token = nil
	u.TokenExpiredAt = nil
}

// TokenExpired 过期时间严格小于 now 才算过期；没有 token 视为过期
func (u *User) TokenExpired(nowMillis int64) bool {
	return u.TokenExpiredAt == nil || *u.TokenExpiredAt < nowMillis
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByToken(ctx context.Context, token string) (*User, error)
	Exists(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]User, int64, error)
	Update(ctx context.Context, u *User) error
}
