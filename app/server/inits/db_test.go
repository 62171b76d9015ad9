package inits

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-service/app/server/models"
	"todo-service/app/server/password"
)

func memoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}

func TestDB_UnsupportedDriver(t *testing.T) {
	_, err := DB("mysql", "whatever", "")
	assert.Error(t, err)
}

func TestDB_NoSeedWithoutPassword(t *testing.T) {
	db, err := DB("sqlite", memoryDSN(), "")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDB_SeedInitialAdmin(t *testing.T) {
	dsn := memoryDSN()
	db, err := DB("sqlite", dsn, "initial-pass")
	require.NoError(t, err)

	var admin models.User
	require.NoError(t, db.First(&admin, "username = ?", "admin").Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.True(t, password.New(nil).Verify("initial-pass", admin.PasswordHash))

	// 已有用户时不再重复创建
	require.NoError(t, initData(db, "another-pass"))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
