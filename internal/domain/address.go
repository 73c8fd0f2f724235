package domain

import "context"

type Address struct {
	ID         string `gorm:"primaryKey;size:100" json:"id"`
	ContactID  string `gorm:"size:100;not null;index" json:"-"`
	Street     string `gorm:"size:200" json:"street"`
	City       string `gorm:"size:100" json:"city"`
	Province   string `gorm:"size:100" json:"province"`
	Country    string `gorm:"size:100;not null" json:"country"`
	PostalCode string `gorm:"size:10" json:"postalCode"`
}

func (Address) TableName() string { return "addresses" }

type AddressRepository interface {
	Create(ctx context.Context, a *Address) error
	FindByContactAndID(ctx context.Context, contactID, id string) (*Address, error)
	ListByContact(ctx context.Context, contactID string) ([]Address, error)
	Update(ctx context.Context, a *Address) error
	Delete(ctx context.Context, a *Address) error
	DeleteByContact(ctx context.Context, contactID string) error
}
