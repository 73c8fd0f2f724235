package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-contacts/internal/core/events"
	"go-gin-contacts/internal/domain"
	"go-gin-contacts/internal/repo"
	"go-gin-contacts/pkg/utils"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	st := repo.NewMemStore()
	pub := &recordingPublisher{}
	s := NewUserService(st, Deps{Events: pub})

	require.NoError(t, s.Register(ctx, &RegisterUserRequest{Username: "test", Password: "rahasia", Name: "Test"}))

	u, err := st.Users().FindByUsername(ctx, "test")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Test", u.Name)
	assert.NotEqual(t, "rahasia", u.Password, "password must be stored hashed")
	assert.True(t, utils.CheckPassword("rahasia", u.Password))
	assert.Nil(t, u.Token)
	assert.Equal(t, []string{events.UserRegistered}, pub.types())

	t.Run("duplicate", func(t *testing.T) {
		err := s.Register(ctx, &RegisterUserRequest{Username: "test", Password: "x", Name: "Other"})
		requireStatus(t, err, http.StatusBadRequest, "Username already registered")
	})

	t.Run("invalid", func(t *testing.T) {
		cases := []struct {
			name string
			req  RegisterUserRequest
			msg  string
		}{
			{"blank", RegisterUserRequest{}, "name: must not be blank, password: must not be blank, username: must not be blank"},
			{"whitespace", RegisterUserRequest{Username: "  ", Password: "p", Name: "n"}, "username: must not be blank"},
			{"too long", RegisterUserRequest{Username: strings.Repeat("a", 101), Password: "p", Name: "n"}, "username: size must be between 0 and 100"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := s.Register(ctx, &tc.req)
				requireStatus(t, err, http.StatusBadRequest, tc.msg)
			})
		}
	})

	t.Run("publish failure does not fail request", func(t *testing.T) {
		pub.err = assert.AnError
		defer func() { pub.err = nil }()
		assert.NoError(t, s.Register(ctx, &RegisterUserRequest{Username: "other", Password: "p", Name: "n"}))
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	st := repo.NewMemStore()
	user := seedUser(t, st, "test", "rahasia")
	s := NewUserService(st, Deps{})

	t.Run("get", func(t *testing.T) {
		out := s.Get(ctx, user)
		assert.Equal(t, &UserResponse{Username: "test", Name: "Test test"}, out)
	})

	t.Run("name only", func(t *testing.T) {
		name := "Eko"
		out, err := s.Update(ctx, user, &UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Eko", out.Name)

		u, _ := st.Users().FindByUsername(ctx, "test")
		assert.True(t, utils.CheckPassword("rahasia", u.Password), "password untouched")
	})

	t.Run("password only", func(t *testing.T) {
		pw := "baru"
		out, err := s.Update(ctx, user, &UpdateUserRequest{Password: &pw})
		require.NoError(t, err)
		assert.Equal(t, "Eko", out.Name)

		u, _ := st.Users().FindByUsername(ctx, "test")
		assert.True(t, utils.CheckPassword("baru", u.Password))
	})

	t.Run("too long", func(t *testing.T) {
		name := strings.Repeat("x", 101)
		_, err := s.Update(ctx, user, &UpdateUserRequest{Name: &name})
		requireStatus(t, err, http.StatusBadRequest, "name: size must be between 0 and 100")
	})

	t.Run("user vanished", func(t *testing.T) {
		_, err := s.Update(ctx, &domain.User{Username: "ghost"}, &UpdateUserRequest{})
		requireStatus(t, err, http.StatusUnauthorized, "")
	})
}
