package inits

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-service/app/server/models"
	"todo-service/app/server/password"
)

func DB(driver string, conn string, initialAdminPassword string) (db *gorm.DB, err error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(conn)
	case "sqlite":
		dialector = sqlite.Open(conn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// 打开连接，唯一约束冲突统一转换为 gorm.ErrDuplicatedKey
	if db, err = gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db, initialAdminPassword); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Todo{},
	)
}

func initData(db *gorm.DB, initialAdminPassword string) (err error) {
	// 没有配置初始密码时不创建，避免出现默认口令
	if initialAdminPassword == "" {
		return nil
	}

	// 查询现有记录数量
	var counter int64
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter > 0 {
		return nil
	}

	// 没有任何用户，添加初始管理员
	passwordHash, err := password.New(nil).Hash(initialAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	// 插入记录
	if err = db.Create(&models.User{
		Username:     "admin",
		FirstName:    "Todo",
		LastName:     "Admin",
		PasswordHash: passwordHash,
		IsActive:     true,
		Role:         models.RoleAdmin,
	}).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}
