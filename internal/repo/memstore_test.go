package repo

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-contacts/internal/domain"
)

func TestMemStore_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	require.NoError(t, st.Users().Create(ctx, &domain.User{Username: "test"}))

	boom := errors.New("boom")
	err := st.Transaction(ctx, func(tx domain.Store) error {
		require.NoError(t, tx.Contacts().Create(ctx, &domain.Contact{ID: "c1", Username: "test", FirstName: "Eko"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	c, err := st.Contacts().FindByUserAndID(ctx, "test", "c1")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestMemStore_CopiesUserPointers(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	u := &domain.User{Username: "test"}
	u.SetToken("tok", 10)
	require.NoError(t, st.Users().Create(ctx, u))

	*u.Token = "changed"
	got, err := st.Users().FindByToken(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok", *got.Token)
}

func TestMemStore_Duplicate(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	require.NoError(t, st.Users().Create(ctx, &domain.User{Username: "test"}))
	assert.ErrorIs(t, st.Users().Create(ctx, &domain.User{Username: "test"}), domain.ErrDuplicate)
}

func TestMemStore_ErrorOnNextCall(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	st.ErrorOnNextCall = errors.New("injected")

	_, err := st.Users().Exists(ctx, "x")
	assert.EqualError(t, err, "injected")

	_, err = st.Users().Exists(ctx, "x")
	assert.NoError(t, err, "error fires once")
}

func TestWindow(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, window(all, 2, 2))
	assert.Equal(t, []int{5}, window(all, 4, 10))
	assert.Equal(t, []int{}, window(all, 5, 10))
	assert.Equal(t, []int{}, window(all, -10, 2))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, window(all, 0, math.MaxInt))
	assert.Equal(t, []int{5}, window(all, 4, math.MaxInt))
}
