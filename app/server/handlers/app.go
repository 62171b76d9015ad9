package handlers

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"todo-service/app/server/auth"
	"todo-service/app/server/cache"
	"todo-service/app/server/jwt"
	"todo-service/app/server/password"
	"todo-service/app/server/store"
)

type App struct {
	l        *zap.Logger         // 日志
	db       *gorm.DB            // 数据库
	users    *store.UserStore    // 用户
	todos    *store.TodoStore    // 待办
	auth     *auth.Authenticator // 登录与注册
	profiles *cache.Profiles     // 用户资料缓存
	jwt      *jwt.JWT            // JWT ，用于无状态验证

	allowAdminRegistration bool // 注册时是否允许直接申请管理员
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, hasher *password.Hasher, allowAdminRegistration bool) (*App, error) {
	users := store.NewUserStore(db)

	authenticator, err := auth.New(l, users, hasher, j)
	if err != nil {
		return nil, fmt.Errorf("failed to init authenticator: %w", err)
	}

	return &App{
		l:                      l,
		db:                     db,
		users:                  users,
		todos:                  store.NewTodoStore(db),
		auth:                   authenticator,
		profiles:               cache.NewProfiles(rdb, l),
		jwt:                    j,
		allowAdminRegistration: allowAdminRegistration,
	}, nil
}
