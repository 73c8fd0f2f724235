package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-contacts/internal/domain"
	"go-gin-contacts/internal/service"
	"go-gin-contacts/internal/transport/http/ez"
	resp "go-gin-contacts/internal/transport/http/response"
)

type ContactHandler struct {
	contacts *service.ContactService
}

func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Priority() int { return 20 }

func (h *ContactHandler) MountAPI(_, authed ez.EZ) {
	ez.RegisterAction(authed, ez.Action[service.CreateContactRequest, *service.ContactResponse]{
		Method: http.MethodPost,
		Path:   "/contacts",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *service.CreateContactRequest) (*service.ContactResponse, error) {
			return h.contacts.Create(c.Request.Context(), u, in)
		},
	})

	ez.RegisterAction(authed, ez.Action[service.SearchContactRequest, ez.Page[service.ContactResponse]]{
		Method: http.MethodGet,
		Path:   "/contacts",
		Binder: ez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *service.SearchContactRequest) (ez.Page[service.ContactResponse], error) {
			p, err := h.contacts.Search(c.Request.Context(), u, in)
			if err != nil {
				return ez.Page[service.ContactResponse]{}, err
			}
			return ez.Page[service.ContactResponse]{
				Items:  p.Items,
				Paging: resp.Paging{CurrentPage: p.CurrentPage, TotalPage: p.TotalPage, Size: p.Size},
			}, nil
		},
	})

	ez.RegisterAction(authed, ez.Action[contactPath, *service.ContactResponse]{
		Method: http.MethodGet,
		Path:   "/contacts/:contactId",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *contactPath) (*service.ContactResponse, error) {
			return h.contacts.Get(c.Request.Context(), u, in.ContactID)
		},
	})

	ez.RegisterAction(authed, ez.Action[service.UpdateContactRequest, *service.ContactResponse]{
		Method: http.MethodPut,
		Path:   "/contacts/:contactId",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *service.UpdateContactRequest) (*service.ContactResponse, error) {
			return h.contacts.Update(c.Request.Context(), u, in)
		},
	})

	ez.RegisterAction(authed, ez.Action[contactPath, string]{
		Method: http.MethodDelete,
		Path:   "/contacts/:contactId",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, u *domain.User, in *contactPath) (string, error) {
			if err := h.contacts.Delete(c.Request.Context(), u, in.ContactID); err != nil {
				return "", err
			}
			return okBody, nil
		},
	})
}
