package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-gin-contacts/internal/domain"
)

type AddressRepo struct{ db *gorm.DB }

func NewAddressRepo(db *gorm.DB) *AddressRepo { return &AddressRepo{db: db} }

func (r *AddressRepo) Create(ctx context.Context, a *domain.Address) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	return nil
}

func (r *AddressRepo) FindByContactAndID(ctx context.Context, contactID, id string) (*domain.Address, error) {
	var a domain.Address
	err := r.db.WithContext(ctx).Where("contact_id = ? AND id = ?", contactID, id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find address: %w", err)
	}
	return &a, nil
}

func (r *AddressRepo) ListByContact(ctx context.Context, contactID string) ([]domain.Address, error) {
	out := []domain.Address{}
	if err := r.db.WithContext(ctx).Where("contact_id = ?", contactID).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return out, nil
}

func (r *AddressRepo) Update(ctx context.Context, a *domain.Address) error {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}

func (r *AddressRepo) Delete(ctx context.Context, a *domain.Address) error {
	if err := r.db.WithContext(ctx).Where("contact_id = ? AND id = ?", a.ContactID, a.ID).Delete(&domain.Address{}).Error; err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

func (r *AddressRepo) DeleteByContact(ctx context.Context, contactID string) error {
	if err := r.db.WithContext(ctx).Where("contact_id = ?", contactID).Delete(&domain.Address{}).Error; err != nil {
		return fmt.Errorf("delete addresses: %w", err)
	}
	return nil
}
