package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-service/app/server/models"
)

func TestAuthRegister(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodPost, "/auth/", "", map[string]string{"username": "alice", "password": "pw123456"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())

	user, err := f.app.users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "pw123456", user.PasswordHash)

	// 重复的用户名
	rec = f.do(http.MethodPost, "/auth/", "", map[string]string{"username": "alice", "password": "other-password"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Conflict"}`, rec.Body.String())
}

func TestAuthRegister_InvalidInput(t *testing.T) {
	f := newFixture(t, false)

	cases := map[string]map[string]string{
		"unknown role":   {"username": "bob", "password": "pw123456", "role": "superuser"},
		"short password": {"username": "bob", "password": "123"},
		"no username":    {"password": "pw123456"},
		"no password":    {"username": "bob"},
	}
	for name, body := range cases {
		rec := f.do(http.MethodPost, "/auth/", "", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}

	_, err := f.app.users.GetByUsername(context.Background(), "bob")
	assert.Error(t, err)
}

func TestAuthRegister_AdminRole(t *testing.T) {
	f := newFixture(t, false)
	rec := f.do(http.MethodPost, "/auth/", "", map[string]string{"username": "root", "password": "pw123456", "role": "admin"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f = newFixture(t, true)
	rec = f.do(http.MethodPost, "/auth/", "", map[string]string{"username": "root", "password": "pw123456", "role": "admin"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	user, err := f.app.users.GetByUsername(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestAuthToken(t *testing.T) {
	f := newFixture(t, false)
	f.register(t, "alice", "pw123456", "")

	token := f.login(t, "alice", "pw123456")
	user, err := f.app.jwt.ParseUser(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "user", user.Role)
	assert.Equal(t, f.clock.Now().Add(20*time.Minute).Unix(), user.Expires)
}

func TestAuthToken_Failures(t *testing.T) {
	f := newFixture(t, false)
	f.register(t, "alice", "pw123456", "")

	wrongPassword := f.postForm("/auth/token", url.Values{"username": {"alice"}, "password": {"wrong-password"}})
	unknownUser := f.postForm("/auth/token", url.Values{"username": {"nobody"}, "password": {"pw123456"}})

	// 两种失败不可区分
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())

	rec := f.postForm("/auth/token", url.Values{"username": {"alice"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthToken_TrimsUsername(t *testing.T) {
	f := newFixture(t, false)
	f.register(t, " alice ", "pw123456", "")

	user, err := f.app.users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	f.login(t, " alice", "pw123456")
	f.login(t, "alice ", "pw123456")

	rec := f.postForm("/auth/token", url.Values{"username": {"   "}, "password": {"pw123456"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
