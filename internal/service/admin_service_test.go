package service

import (
	"context"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-contacts/internal/repo"
)

func TestAdminService(t *testing.T) {
	ctx := context.Background()
	st := repo.NewMemStore()
	seedUser(t, st, "alice", "pw")
	seedUser(t, st, "bob", "pw")
	seedUser(t, st, "carol", "pw")

	auth := newAuth(st)
	_, err := auth.Login(ctx, &LoginUserRequest{Username: "bob", Password: "pw"})
	require.NoError(t, err)

	s := NewAdminService(st, Deps{})
	s.now = fixedClock(now)

	p, err := s.ListUsers(ctx, &ListUsersRequest{Page: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalPage)
	assert.Equal(t, []AdminUserRow{
		{Username: "alice", Name: "Test alice"},
		{Username: "bob", Name: "Test bob", TokenActive: true},
	}, p.Items)

	t.Run("page past int range is empty", func(t *testing.T) {
		p, err := s.ListUsers(ctx, &ListUsersRequest{Page: math.MaxInt/2 + 1, Size: 2})
		require.NoError(t, err)
		assert.Empty(t, p.Items)
		assert.Equal(t, 2, p.TotalPage)
	})

	t.Run("revoke", func(t *testing.T) {
		require.NoError(t, s.RevokeToken(ctx, "bob"))
		u, err := st.Users().FindByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Nil(t, u.Token)
		assert.Nil(t, u.TokenExpiredAt)
	})

	t.Run("revoke unknown", func(t *testing.T) {
		err := s.RevokeToken(ctx, "ghost")
		requireStatus(t, err, http.StatusNotFound, "User not found")
	})

	t.Run("size too large", func(t *testing.T) {
		_, err := s.ListUsers(ctx, &ListUsersRequest{Size: 500})
		requireStatus(t, err, http.StatusBadRequest, "size: must be less than or equal to 100")
	})
}
