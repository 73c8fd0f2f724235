package service

import (
	"context"
	"math"

	"go-gin-contacts/internal/core/apperr"
	"go-gin-contacts/internal/core/events"
	"go-gin-contacts/internal/core/validation"
	"go-gin-contacts/internal/domain"
	"go-gin-contacts/pkg/utils"
)

type ContactService struct {
	store domain.Store
	deps  Deps
}

func NewContactService(store domain.Store, deps Deps) *ContactService {
	return &ContactService{store: store, deps: deps.normalized()}
}

func (s *ContactService) Create(ctx context.Context, user *domain.User, req *CreateContactRequest) (*ContactResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	c := &domain.Contact{
		ID:        utils.NewID(),
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.store.Contacts().Create(ctx, c); err != nil {
		return nil, internalErr(err)
	}
	s.deps.publish(ctx, events.Event{Type: events.ContactCreated, Username: user.Username, ResourceID: c.ID})
	out := toContactResponse(c)
	return &out, nil
}

func (s *ContactService) Get(ctx context.Context, user *domain.User, id string) (*ContactResponse, error) {
	c, err := s.find(ctx, s.store, user, id)
	if err != nil {
		return nil, err
	}
	out := toContactResponse(c)
	return &out, nil
}

// Update 整体覆盖 firstName/lastName/email/phone
func (s *ContactService) Update(ctx context.Context, user *domain.User, req *UpdateContactRequest) (*ContactResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var out ContactResponse
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		c, err := s.find(ctx, tx, user, req.ID)
		if err != nil {
			return err
		}
		c.FirstName = req.FirstName
		c.LastName = req.LastName
		c.Email = req.Email
		c.Phone = req.Phone
		if err := tx.Contacts().Update(ctx, c); err != nil {
			return internalErr(err)
		}
		out = toContactResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.deps.publish(ctx, events.Event{Type: events.ContactUpdated, Username: user.Username, ResourceID: out.ID})
	return &out, nil
}

// Delete 同一事务内先删地址再删联系人
func (s *ContactService) Delete(ctx context.Context, user *domain.User, id string) error {
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		c, err := s.find(ctx, tx, user, id)
		if err != nil {
			return err
		}
		if err := tx.Addresses().DeleteByContact(ctx, c.ID); err != nil {
			return internalErr(err)
		}
		if err := tx.Contacts().Delete(ctx, c); err != nil {
			return internalErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.deps.publish(ctx, events.Event{Type: events.ContactDeleted, Username: user.Username, ResourceID: id})
	return nil
}

// Search 页码越界返回空列表而不是错误
func (s *ContactService) Search(ctx context.Context, user *domain.User, req *SearchContactRequest) (*Page[ContactResponse], error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	f := domain.ContactFilter{Name: req.Name, Email: req.Email, Phone: req.Phone}
	rows, total, err := s.store.Contacts().Search(ctx, user.Username, f, pageOffset(req.Page, req.Size), req.Size)
	if err != nil {
		return nil, internalErr(err)
	}
	items := make([]ContactResponse, 0, len(rows))
	for i := range rows {
		items = append(items, toContactResponse(&rows[i]))
	}
	p := newPage(items, req.Page, req.Size, total)
	return &p, nil
}

// pageOffset 乘积溢出时返回 math.MaxInt，仓储按越界处理
func pageOffset(page, size int) int {
	if page > math.MaxInt/size {
		return math.MaxInt
	}
	return page * size
}

func (s *ContactService) find(ctx context.Context, st domain.Store, user *domain.User, id string) (*domain.Contact, error) {
	c, err := st.Contacts().FindByUserAndID(ctx, user.Username, id)
	if err != nil {
		return nil, internalErr(err)
	}
	if c == nil {
		return nil, apperr.NotFound(msgContactNotFound)
	}
	return c, nil
}
