package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-gin-contacts/internal/domain"
)

type ContactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// FindByUserAndID 归属不符与不存在一样返回 (nil, nil)
func (r *ContactRepo) FindByUserAndID(ctx context.Context, username, id string) (*domain.Contact, error) {
	var c domain.Contact
	err := r.db.WithContext(ctx).Where("username = ? AND id = ?", username, id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return &c, nil
}

func (r *ContactRepo) Update(ctx context.Context, c *domain.Contact) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

func (r *ContactRepo) Delete(ctx context.Context, c *domain.Contact) error {
	res := r.db.WithContext(ctx).Where("username = ? AND id = ?", c.Username, c.ID).Delete(&domain.Contact{})
	if res.Error != nil {
		return fmt.Errorf("delete contact: %w", res.Error)
	}
	return nil
}

func (r *ContactRepo) Search(ctx context.Context, username string, f domain.ContactFilter, offset, limit int) ([]domain.Contact, int64, error) {
	q := applyContactFilter(r.db.WithContext(ctx).Model(&domain.Contact{}), username, f).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}
	if offset < 0 || limit <= 0 || int64(offset) >= total {
		return []domain.Contact{}, total, nil
	}
	// 容量按剩余条数封顶，limit 来自请求参数
	out := make([]domain.Contact, 0, min(int64(limit), total-int64(offset)))
	if err := q.Order("first_name").Order("id").Offset(offset).Limit(limit).Find(&out).Error; err != nil {
		return nil, 0, fmt.Errorf("search contacts: %w", err)
	}
	return out, total, nil
}
