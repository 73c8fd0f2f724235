package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-gin-contacts/internal/core/apperr"
	"go-gin-contacts/internal/core/events"
	"go-gin-contacts/internal/domain"
	"go-gin-contacts/pkg/utils"
)

type recordingPublisher struct {
	mu  sync.Mutex
	got []events.Event
	err error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.got))
	for _, e := range p.got {
		out = append(out, e.Type)
	}
	return out
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func seedUser(t *testing.T, st domain.Store, username, password string) *domain.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &domain.User{Username: username, Password: hashed, Name: "Test " + username}
	require.NoError(t, st.Users().Create(context.Background(), u))
	return u
}

func requireStatus(t *testing.T, err error, status int, msg string) {
	t.Helper()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae, "expected *apperr.Error, got %T", err)
	require.Equal(t, status, ae.Code)
	if msg != "" {
		require.Equal(t, msg, ae.Msg)
	}
}
