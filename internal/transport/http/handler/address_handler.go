package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-contacts/internal/domain"
	"go-gin-contacts/internal/service"
	"go-gin-contacts/internal/transport/http/ez"
)

type AddressHandler struct {
	addresses *service.AddressService
}

func NewAddressHandler(addresses *service.AddressService) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

func (h *AddressHandler) Priority() int { return 30 }

func (h *AddressHandler) MountAPI(_, authed ez.EZ) {
	ez.RegisterAction(authed, ez.Action[service.CreateAddressRequest, *service.AddressResponse]{
		Method: http.MethodPost,
		Path:   "/contacts/:contactId/addresses",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *service.CreateAddressRequest) (*service.AddressResponse, error) {
			return h.addresses.Create(c.Request.Context(), u, in)
		},
	})

	ez.RegisterAction(authed, ez.Action[contactPath, []service.AddressResponse]{
		Method: http.MethodGet,
		Path:   "/contacts/:contactId/addresses",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *contactPath) ([]service.AddressResponse, error) {
			return h.addresses.List(c.Request.Context(), u, in.ContactID)
		},
	})

	ez.RegisterAction(authed, ez.Action[addressPath, *service.AddressResponse]{
		Method: http.MethodGet,
		Path:   "/contacts/:contactId/addresses/:addressId",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *addressPath) (*service.AddressResponse, error) {
			return h.addresses.Get(c.Request.Context(), u, in.ContactID, in.AddressID)
		},
	})

	ez.RegisterAction(authed, ez.Action[service.UpdateAddressRequest, *service.AddressResponse]{
		Method: http.MethodPut,
		Path:   "/contacts/:contactId/addresses/:addressId",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *service.UpdateAddressRequest) (*service.AddressResponse, error) {
			return h.addresses.Update(c.Request.Context(), u, in)
		},
	})

	ez.RegisterAction(authed, ez.Action[addressPath, string]{
		Method: http.MethodDelete,
		Path:   "/contacts/:contactId/addresses/:addressId",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *addressPath) (string, error) {
			if err := h.addresses.Remove(c.Request.Context(), u, in.ContactID, in.AddressID); err != nil {
				return "", err
			}
			return okBody, nil
		},
	})
}
