package service

import "go-gin-contacts/internal/domain"

// ---------- user / auth ----------

type RegisterUserRequest struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Password string `json:"password" validate:"notblank,max=100"`
	Name     string `json:"name" validate:"notblank,max=100"`
}

// UpdateUserRequest nil 表示不修改
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,max=100"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"notblank,max=100"`
	Password string `json:"password" validate:"notblank,max=100"`
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"`
}

func toUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{Username: u.Username, Name: u.Name}
}

// ---------- contact ----------

type CreateContactRequest struct {
	FirstName string `json:"firstName" validate:"notblank,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,max=100,email"`
	Phone     string `json:"phone" validate:"max=100"`
}

// UpdateContactRequest id 只取路径参数
type UpdateContactRequest struct {
	ID        string `json:"-" uri:"contactId" validate:"notblank"`
	FirstName string `json:"firstName" validate:"notblank,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,max=100,email"`
	Phone     string `json:"phone" validate:"max=100"`
}

type SearchContactRequest struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Phone string `form:"phone"`
	Page  int    `form:"page,default=0" validate:"min=0"`
	Size  int    `form:"size,default=10" validate:"min=1,max=100"`
}

type ContactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func toContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// ---------- address ----------

type CreateAddressRequest struct {
	ContactID  string `json:"-" uri:"contactId" validate:"notblank"`
	Street     string `json:"street" validate:"max=200"`
	City       string `json:"city" validate:"max=100"`
	Province   string `json:"province" validate:"max=100"`
	Country    string `json:"country" validate:"notblank,max=100"`
	PostalCode string `json:"postalCode" validate:"max=10"`
}

type UpdateAddressRequest struct {
	ContactID  string `json:"-" uri:"contactId" validate:"notblank"`
	AddressID  string `json:"-" uri:"addressId" validate:"notblank"`
	Street     string `json:"street" validate:"max=200"`
	City       string `json:"city" validate:"max=100"`
	Province   string `json:"province" validate:"max=100"`
	Country    string `json:"country" validate:"notblank,max=100"`
	PostalCode string `json:"postalCode" validate:"max=10"`
}

type AddressResponse struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

func toAddressResponse(a *domain.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

// ---------- admin ----------

type ListUsersRequest struct {
	Page int `form:"page,default=0" validate:"min=0"`
	Size int `form:"size,default=20" validate:"min=1,max=100"`
}

type AdminUserRow struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	TokenActive bool   `json:"tokenActive"`
}

// ---------- paging ----------

// Page 搜索结果；CurrentPage 从 0 开始
type Page[T any] struct {
	Items       []T
	CurrentPage int
	TotalPage   int
	Size        int
}

func newPage[T any](items []T, page, size int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		CurrentPage: page,
		TotalPage:   int((total + int64(size) - 1) / int64(size)),
		Size:        size,
	}
}
