package domain

import (
	"context"
	"errors"
)

// ErrDuplicate 主键或唯一索引冲突
var ErrDuplicate = errors.New("duplicate key")

// Store 提供一组绑定在同一连接（或同一事务）上的仓储
type Store interface {
	Users() UserRepository
	Contacts() ContactRepository
	Addresses() AddressRepository
	// Transaction 内 fn 返回 error 即回滚
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// Models 用于 AutoMigrate，顺序即建表顺序
func Models() []any { return []any{&User{}, &Contact{}, &Address{}} }
