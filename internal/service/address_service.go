package service

import (
	"context"

	"go-gin-contacts/internal/core/apperr"
	"go-gin-contacts/internal/core/events"
	"go-gin-contacts/internal/core/validation"
	"go-gin-contacts/internal/domain"
	"go-gin-contacts/pkg/utils"
)

// AddressService 地址归属链：address -> contact -> user
type AddressService struct {
	store domain.Store
	deps  Deps
}

func NewAddressService(store domain.Store, deps Deps) *AddressService {
	return &AddressService{store: store, deps: deps.normalized()}
}

func (s *AddressService) Create(ctx context.Context, user *domain.User, req *CreateAddressRequest) (*AddressResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var out AddressResponse
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		c, err := contactOf(ctx, tx, user, req.ContactID)
		if err != nil {
			return err
		}
		a := &domain.Address{
			ID:         utils.NewID(),
			ContactID:  c.ID,
			Street:     req.Street,
			City:       req.City,
			Province:   req.Province,
			Country:    req.Country,
			PostalCode: req.PostalCode,
		}
		if err := tx.Addresses().Create(ctx, a); err != nil {
			return internalErr(err)
		}
		out = toAddressResponse(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.deps.publish(ctx, events.Event{Type: events.AddressCreated, Username: user.Username, ContactID: req.ContactID, ResourceID: out.ID})
	return &out, nil
}

func (s *AddressService) Get(ctx context.Context, user *domain.User, contactID, addressID string) (*AddressResponse, error) {
	c, err := contactOf(ctx, s.store, user, contactID)
	if err != nil {
		return nil, err
	}
	a, err := addressOf(ctx, s.store, c, addressID)
	if err != nil {
		return nil, err
	}
	out := toAddressResponse(a)
	return &out, nil
}

func (s *AddressService) Update(ctx context.Context, user *domain.User, req *UpdateAddressRequest) (*AddressResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	var out AddressResponse
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		c, err := contactOf(ctx, tx, user, req.ContactID)
		if err != nil {
			return err
		}
		a, err := addressOf(ctx, tx, c, req.AddressID)
		if err != nil {
			return err
		}
		a.Street = req.Street
		a.City = req.City
		a.Province = req.Province
		a.Country = req.Country
		a.PostalCode = req.PostalCode
		if err := tx.Addresses().Update(ctx, a); err != nil {
			return internalErr(err)
		}
		out = toAddressResponse(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.deps.publish(ctx, events.Event{Type: events.AddressUpdated, Username: user.Username, ContactID: req.ContactID, ResourceID: out.ID})
	return &out, nil
}

func (s *AddressService) Remove(ctx context.Context, user *domain.User, contactID, addressID string) error {
	err := s.store.Transaction(ctx, func(tx domain.Store) error {
		c, err := contactOf(ctx, tx, user, contactID)
		if err != nil {
			return err
		}
		a, err := addressOf(ctx, tx, c, addressID)
		if err != nil {
			return err
		}
		if err := tx.Addresses().Delete(ctx, a); err != nil {
			return internalErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.deps.publish(ctx, events.Event{Type: events.AddressDeleted, Username: user.Username, ContactID: contactID, ResourceID: addressID})
	return nil
}

// List 不分页，按 id 排序
func (s *AddressService) List(ctx context.Context, user *domain.User, contactID string) ([]AddressResponse, error) {
	c, err := contactOf(ctx, s.store, user, contactID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.Addresses().ListByContact(ctx, c.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	out := make([]AddressResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toAddressResponse(&rows[i]))
	}
	return out, nil
}

func contactOf(ctx context.Context, st domain.Store, user *domain.User, contactID string) (*domain.Contact, error) {
	c, err := st.Contacts().FindByUserAndID(ctx, user.Username, contactID)
	if err != nil {
		return nil, internalErr(err)
	}
	if c == nil {
		return nil, apperr.NotFound(msgContactMissing)
	}
	return c, nil
}

func addressOf(ctx context.Context, st domain.Store, c *domain.Contact, addressID string) (*domain.Address, error) {
	a, err := st.Addresses().FindByContactAndID(ctx, c.ID, addressID)
	if err != nil {
		return nil, internalErr(err)
	}
	if a == nil {
		return nil, apperr.NotFound(msgAddressMissing)
	}
	return a, nil
}
