package models

import "gorm.io/gorm"

type Todo struct {
	gorm.Model

	Title       string `gorm:"column:title"`          // 标题
	Description string `gorm:"column:description"`    // 描述
	Priority    int    `gorm:"column:priority"`       // 优先级 0 ~ 10
	Complete    bool   `gorm:"column:complete"`       // 是否已完成
	OwnerID     uint   `gorm:"column:owner_id;index"` // 所属用户

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
