package repo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go-gin-contacts/internal/domain"
)

// MemStore 内存版 domain.Store，给 service / handler 测试和本地演示用
type MemStore struct {
	mu        *sync.RWMutex
	users     map[string]domain.User
	contacts  map[string]domain.Contact
	addresses map[string]domain.Address

	// ErrorOnNextCall 注入一次性错误，用于测试失败分支
	ErrorOnNextCall error
}

var _ domain.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		mu:        &sync.RWMutex{},
		users:     map[string]domain.User{},
		contacts:  map[string]domain.Contact{},
		addresses: map[string]domain.Address{},
	}
}

func (m *MemStore) checkError() error {
	if m.ErrorOnNextCall != nil {
		err := m.ErrorOnNextCall
		m.ErrorOnNextCall = nil
		return err
	}
	return nil
}

func (m *MemStore) Users() domain.UserRepository        { return memUsers{m} }
func (m *MemStore) Contacts() domain.ContactRepository  { return memContacts{m} }
func (m *MemStore) Addresses() domain.AddressRepository { return memAddresses{m} }

// Transaction fn 出错时整体回滚到快照
func (m *MemStore) Transaction(ctx context.Context, fn func(tx domain.Store) error) error {
	m.mu.RLock()
	users := cloneMap(m.users)
	contacts := cloneMap(m.contacts)
	addresses := cloneMap(m.addresses)
	m.mu.RUnlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.users, m.contacts, m.addresses = users, contacts, addresses
		m.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ---------- users ----------

type memUsers struct{ m *MemStore }

func (r memUsers) Create(_ context.Context, u *domain.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkError(); err != nil {
		return err
	}
	if _, ok := r.m.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	r.m.users[u.Username] = copyUser(*u)
	return nil
}

func (r memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if err := r.m.checkError(); err != nil {
		return nil, err
	}
	u, ok := r.m.users[username]
	if !ok {
		return nil, nil
	}
	u = copyUser(u)
	return &u, nil
}

func (r memUsers) FindByToken(_ context.Context, token string) (*domain.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if err := r.m.checkError(); err != nil {
		return nil, err
	}
	for _, u := range r.m.users {
		if u.Token != nil && *u.Token == token {
			u = copyUser(u)
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUsers) Exists(ctx context.Context, username string) (bool, error) {
	u, err := r.FindByUsername(ctx, username)
	return u != nil, err
}

func (r memUsers) List(_ context.Context, offset, limit int) ([]domain.User, int64, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if err := r.m.checkError(); err != nil {
		return nil, 0, err
	}
	all := make([]domain.User, 0, len(r.m.users))
	for _, u := range r.m.users {
		all = append(all, copyUser(u))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })
	return window(all, offset, limit), int64(len(all)), nil
}

func (r memUsers) Update(_ context.Context, u *domain.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkError(); err != nil {
		return err
	}
	r.m.users[u.Username] = copyUser(*u)
	return nil
}

// copyUser 指针字段也要拷贝，避免调用方改到存储里的值
func copyUser(u domain.User) domain.User {
	if u.Token != nil {
		t := *u.Token
		u.Token = &t
	}
	if u.TokenExpiredAt != nil {
		e := *u.TokenExpiredAt
		u.TokenExpiredAt = &e
	}
	return u
}

// ---------- contacts ----------

type memContacts struct{ m *MemStore }

func (r memContacts) Create(_ context.Context, c *domain.Contact) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkError(); err != nil {
		return err
	}
	if _, ok := r.m.contacts[c.ID]; ok {
		return domain.ErrDuplicate
	}
	r.m.contacts[c.ID] = *c
	return nil
}

func (r memContacts) FindByUserAndID(_ context.Context, username, id string) (*domain.Contact, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if err := r.m.checkError(); err != nil {
		return nil, err
	}
	c, ok := r.m.contacts[id]
	if !ok || c.Username != username {
		return nil, nil
	}
	return &c, nil
}

func (r memContacts) Update(_ context.Context, c *domain.Contact) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkError(); err != nil {
		return err
	}
	r.m.contacts[c.ID] = *c
	return nil
}

func (r memContacts) Delete(_ context.Context, c *domain.Contact) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkError(); err != nil {
		return err
	}
	if cur, ok := r.m.contacts[c.ID]; ok && cur.Username == c.Username {
		delete(r.m.contacts, c.ID)
	}
	return nil
}

func (r memContacts) Search(_ context.Context, username string, f domain.ContactFilter, offset, limit int) ([]domain.Contact, int64, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if err := r.m.checkError(); err != nil {
		return nil, 0, err
	}
	name := strings.ToLower(strings.TrimSpace(f.Name))
	email := strings.ToLower(strings.TrimSpace(f.Email))
	phone := strings.TrimSpace(f.Phone)

	var hits []domain.Contact
	for _, c := range r.m.contacts {
		if c.Username != username {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(c.FirstName), name) &&
			!strings.Contains(strings.ToLower(c.LastName), name) {
			continue
		}
		if email != "" && !strings.Contains(strings.ToLower(c.Email), email) {
			continue
		}
		if phone != "" && !strings.Contains(c.Phone, phone) {
			continue
		}
		hits = append(hits, c)
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].FirstName != hits[j].FirstName {
			return hits[i].FirstName < hits[j].FirstName
		}
		return hits[i].ID < hits[j].ID
	})
	return window(hits, offset, limit), int64(len(hits)), nil
}

// ---------- addresses ----------

type memAddresses struct{ m *MemStore }

func (r memAddresses) Create(_ context.Context, a *domain.Address) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkError(); err != nil {
		return err
	}
	if _, ok := r.m.addresses[a.ID]; ok {
		return domain.ErrDuplicate
	}
	r.m.addresses[a.ID] = *a
	return nil
}

func (r memAddresses) FindByContactAndID(_ context.Context, contactID, id string) (*domain.Address, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if err := r.m.checkError(); err != nil {
		return nil, err
	}
	a, ok := r.m.addresses[id]
	if !ok || a.ContactID != contactID {
		return nil, nil
	}
	return &a, nil
}

func (r memAddresses) ListByContact(_ context.Context, contactID string) ([]domain.Address, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if err := r.m.checkError(); err != nil {
		return nil, err
	}
	out := []domain.Address{}
	for _, a := range r.m.addresses {
		if a.ContactID == contactID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memAddresses) Update(_ context.Context, a *domain.Address) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkError(); err != nil {
		return err
	}
	r.m.addresses[a.ID] = *a
	return nil
}

func (r memAddresses) Delete(_ context.Context, a *domain.Address) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkError(); err != nil {
		return err
	}
	if cur, ok := r.m.addresses[a.ID]; ok && cur.ContactID == a.ContactID {
		delete(r.m.addresses, a.ID)
	}
	return nil
}

func (r memAddresses) DeleteByContact(_ context.Context, contactID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if err := r.m.checkError(); err != nil {
		return err
	}
	for id, a := range r.m.addresses {
		if a.ContactID == contactID {
			delete(r.m.addresses, id)
		}
	}
	return nil
}

func window[T any](all []T, offset, limit int) []T {
	if offset < 0 || limit <= 0 || offset >= len(all) {
		return []T{}
	}
	end := len(all)
	if limit < end-offset {
		end = offset + limit
	}
	return all[offset:end]
}
