package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-contacts/internal/domain"
)

func TestUserEntry_KeepsHiddenFields(t *testing.T) {
	u := &domain.User{Username: "test", Password: "hash", Name: "Test"}
	u.SetToken("tok", 42)

	b, err := json.Marshal(toEntry(u))
	require.NoError(t, err)

	var e userEntry
	require.NoError(t, json.Unmarshal(b, &e))
	got := e.user()
	assert.Equal(t, u, got)
}

func TestUserEntry_Nil(t *testing.T) {
	assert.Nil(t, toEntry(nil))
	var e *userEntry
	assert.Nil(t, e.user())
}

func TestTokenKey(t *testing.T) {
	assert.Equal(t, "auth:token:abc", tokenKey("abc"))
}

// redis 不可达时直接回源
func TestGetOrLoadJSON_FallsThroughWhenRedisDown(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()
	ctx := context.Background()

	calls := 0
	got, err := GetOrLoadJSON[userEntry](ctx, c, "k", time.Minute, func(context.Context) (*userEntry, error) {
		calls++
		return &userEntry{Username: "test"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "test", got.Username)
	assert.Equal(t, 1, calls)

	missing, err := GetOrLoadJSON[userEntry](ctx, c, "k2", time.Minute, func(context.Context) (*userEntry, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, missing)

	boom := errors.New("db down")
	_, err = GetOrLoadJSON[userEntry](ctx, c, "k3", time.Minute, func(context.Context) (*userEntry, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestTokenCache_ForgetDeletesTwice(t *testing.T) {
	var (
		deleted  []string
		delay    time.Duration
		deferred func()
	)
	tc := &TokenCache{
		settle: forgetSettle,
		del: func(_ context.Context, keys ...string) error {
			deleted = append(deleted, keys...)
			return nil
		},
		after: func(d time.Duration, f func()) { delay, deferred = d, f },
	}

	require.NoError(t, tc.Forget(context.Background(), "tok"))
	assert.Equal(t, []string{"auth:token:tok"}, deleted)
	assert.Equal(t, forgetSettle, delay)

	// 模拟并发鉴权在第一次删除后回写了旧值
	require.NotNil(t, deferred)
	deferred()
	assert.Equal(t, []string{"auth:token:tok", "auth:token:tok"}, deleted)
}

func TestTokenCache_ForgetReportsFirstDeleteError(t *testing.T) {
	boom := errors.New("redis down")
	calls := 0
	tc := &TokenCache{
		del: func(context.Context, ...string) error {
			calls++
			return boom
		},
		after: func(_ time.Duration, f func()) { f() },
	}
	assert.ErrorIs(t, tc.Forget(context.Background(), "tok"), boom)
	assert.Equal(t, 2, calls)
}
