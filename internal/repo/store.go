package repo

import (
	"context"

	"gorm.io/gorm"

	"go-gin-contacts/internal/domain"
)

// GormStore 把三个仓储绑定到同一个 *gorm.DB（可以是事务句柄）
type GormStore struct {
	db        *gorm.DB
	users     *UserRepo
	contacts  *ContactRepo
	addresses *AddressRepo
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:        db,
		users:     NewUserRepo(db),
		contacts:  NewContactRepo(db),
		addresses: NewAddressRepo(db),
	}
}

func (s *GormStore) Users() domain.UserRepository        { return s.users }
func (s *GormStore) Contacts() domain.ContactRepository  { return s.contacts }
func (s *GormStore) Addresses() domain.AddressRepository { return s.addresses }

// Transaction 默认连接开启了 SkipDefaultTransaction，读改写必须显式走这里
func (s *GormStore) Transaction(ctx context.Context, fn func(tx domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
