package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-gin-contacts/internal/core/auth"
	"go-gin-contacts/internal/domain"
	"go-gin-contacts/internal/repo"
	"go-gin-contacts/internal/service"
	"go-gin-contacts/internal/transport/http/handler"
	"go-gin-contacts/internal/transport/http/router"
)

func TestAdminEndpoints(t *testing.T) {
	ctx := context.Background()
	st := repo.NewMemStore()
	for _, name := range []string{"alice", "bob"} {
		require.NoError(t, st.Users().Create(ctx, &domain.User{Username: name, Password: "x", Name: name}))
	}
	bob, _ := st.Users().FindByUsername(ctx, "bob")
	bob.SetToken("bob-token", time.Now().Add(time.Hour).UnixMilli())
	require.NoError(t, st.Users().Update(ctx, bob))

	j := auth.NewJWTer("secret", "contacts-admin", time.Minute)
	reg := router.NewRegistry(handler.NewAdminHandler(service.NewAdminService(st, service.Deps{}), zap.NewNop()))
	h := router.NewAdminEngine(zap.NewNop(), router.DefaultLimits(), j, reg)

	adminTok, err := j.Issue("ops", auth.RoleAdmin)
	require.NoError(t, err)

	call := func(method, path, bearer string) (int, envelope) {
		req := httptest.NewRequest(method, path, nil)
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		return w.Code, env
	}

	t.Run("requires admin jwt", func(t *testing.T) {
		code, _ := call(http.MethodGet, "/admin/v1/users", "")
		assert.Equal(t, http.StatusUnauthorized, code)

		viewer, err := j.Issue("ops", "viewer")
		require.NoError(t, err)
		code, _ = call(http.MethodGet, "/admin/v1/users", viewer)
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("list users", func(t *testing.T) {
		code, env := call(http.MethodGet, "/admin/v1/users?size=10", adminTok)
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `[
			{"username":"alice","name":"alice","tokenActive":false},
			{"username":"bob","name":"bob","tokenActive":true}
		]`, string(env.Data))
		require.NotNil(t, env.Paging)
		assert.Equal(t, 1, env.Paging.TotalPage)
	})

	t.Run("revoke token", func(t *testing.T) {
		code, env := call(http.MethodDelete, "/admin/v1/users/bob/token", adminTok)
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `"OK"`, string(env.Data))

		u, err := st.Users().FindByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Nil(t, u.Token)

		code, env = call(http.MethodDelete, "/admin/v1/users/ghost/token", adminTok)
		assert.Equal(t, http.StatusNotFound, code)
		require.NotNil(t, env.Errors)
		assert.Equal(t, "User not found", *env.Errors)
	})
}
