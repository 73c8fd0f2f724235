package domain

import "context"

// Contact 只保存所属用户的外键，不挂载对象图
type Contact struct {
	ID        string `gorm:"primaryKey;size:100" json:"id"`
	Username  string `gorm:"size:100;not null;index" json:"-"`
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100" json:"lastName"`
	Phone     string `gorm:"size:100" json:"phone"`
	Email     string `gorm:"size:100" json:"email"`
}

func (Contact) TableName() string { return "contacts" }

// ContactFilter 空字符串表示不过滤
type ContactFilter struct {
	Name  string
	Email string
	Phone string
}

type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	FindByUserAndID(ctx context.Context, username, id string) (*Contact, error)
	Update(ctx context.Context, c *Contact) error
	Delete(ctx context.Context, c *Contact) error
	Search(ctx context.Context, username string, f ContactFilter, offset, limit int) ([]Contact, int64, error)
}
