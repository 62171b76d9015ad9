package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Username  string `gorm:"column:username;uniqueIndex;not null"` // 用户名，全局唯一
	Email     string `gorm:"column:email"`                         // 邮箱
	FirstName string `gorm:"column:first_name"`                    // 名
	LastName  string `gorm:"column:last_name"`                     // 姓

	// 登录与授权认证相关
	PasswordHash string `gorm:"column:hashed_password;not null" json:"-"` // 密码，使用 argon2id 储存（旧数据可能是 bcrypt）
	IsActive     bool   `gorm:"column:is_active"`                         // 是否启用，停用的账号无法登录
	Role         Role   `gorm:"column:role;not null;default:user"`        // 角色
}
