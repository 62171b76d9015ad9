// Package testutil holds helpers shared by the server package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"todo-service/app/server/inits"
	"todo-service/app/server/password"
)

// OpenDB 打开一个迁移好的内存 SQLite 数据库，测试结束后关闭
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := inits.DB("sqlite", dsn, "")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// 内存数据库在最后一个连接关闭时消失，只保留一个连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// Hasher 返回参数很小的 argon2id hasher ，只用于加快测试
func Hasher() *password.Hasher {
	return password.New(&argon2id.Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
}

// Redis 启动一个 miniredis 并返回连接到它的客户端
func Redis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return rdb, mr
}
