package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-service/app/server/constants"
	"todo-service/app/server/models"
)

func TestUserInfoGetSelf(t *testing.T) {
	f := newFixture(t, false)
	token := f.user(t, "alice", "")

	rec := f.do(http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	info := decode[userInfo](t, rec)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, "alice@example.com", info.Email)
	assert.Equal(t, models.RoleUser, info.Role)
	assert.True(t, info.IsActive)

	// 第一次读取后写入缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyUserProfile, info.ID)
	assert.True(t, f.mr.Exists(cacheKey))

	// 命中缓存时不访问数据库
	f.mr.Set(cacheKey, `{"id":1,"username":"cached"}`)
	cached := decode[userInfo](t, f.do(http.MethodGet, "/users/me", token, nil))
	assert.Equal(t, "cached", cached.Username)
}

func TestUserPasswordUpdateSelf(t *testing.T) {
	f := newFixture(t, false)
	f.register(t, "alice", "pw123456", "")
	token := f.login(t, "alice", "pw123456")

	rec := f.do(http.MethodPut, "/users/me/changePassword", token, map[string]string{"password": "wrong", "new_password": "new-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPut, "/users/me/changePassword", token, map[string]string{"password": "pw123456", "new_password": "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/users/me/changePassword", token, map[string]string{"password": "pw123456", "new_password": "new-password"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// 旧密码失效，新密码可用
	rec = f.postForm("/auth/token", url.Values{"username": {"alice"}, "password": {"pw123456"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.login(t, "alice", "new-password")
}

func TestUsers_RequiresSession(t *testing.T) {
	f := newFixture(t, false)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/users/me", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPut, "/users/me/changePassword", "", map[string]string{}).Code)
}
