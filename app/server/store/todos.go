package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-service/app/server/models"
)

// TodoFields 是可以被用户修改的待办字段
type TodoFields struct {
	Title       string
	Description string
	Priority    int
	Complete    bool
}

// TodoStore 中带 Owned 后缀的方法都会按 owner_id 过滤，
// 不属于调用者的记录与不存在的记录一样返回 ErrNotFound
type TodoStore struct {
	db *gorm.DB
}

func NewTodoStore(db *gorm.DB) *TodoStore {
	return &TodoStore{db: db}
}

func (s *TodoStore) Create(ctx context.Context, ownerID uint, fields TodoFields) (*models.Todo, error) {
	todo := models.Todo{
		Title:       fields.Title,
		Description: fields.Description,
		Priority:    fields.Priority,
		Complete:    fields.Complete,
		OwnerID:     ownerID,
	}
	if err := s.db.WithContext(ctx).Create(&todo).Error; err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return &todo, nil
}

func (s *TodoStore) ListOwned(ctx context.Context, ownerID uint) ([]models.Todo, error) {
	todos := []models.Todo{}
	if err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *TodoStore) GetOwned(ctx context.Context, id, ownerID uint) (*models.Todo, error) {
	var todo models.Todo
	if err := s.db.WithContext(ctx).First(&todo, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return &todo, nil
}

func (s *TodoStore) UpdateOwned(ctx context.Context, id, ownerID uint, fields TodoFields) error {
	// 用 map 更新，避免 gorm 跳过 false / 0 这类零值
	res := s.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"title":       fields.Title,
			"description": fields.Description,
			"priority":    fields.Priority,
			"complete":    fields.Complete,
		})
	if res.Error != nil {
		return fmt.Errorf("update todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TodoStore) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	return s.delete(s.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID))
}

// Delete 不检查所属用户，仅供管理员使用
func (s *TodoStore) Delete(ctx context.Context, id uint) error {
	return s.delete(s.db.WithContext(ctx).Where("id = ?", id))
}

func (s *TodoStore) delete(query *gorm.DB) error {
	res := query.Delete(&models.Todo{})
	if res.Error != nil {
		return fmt.Errorf("delete todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll 列出所有用户的待办，仅供管理员使用
func (s *TodoStore) ListAll(ctx context.Context, showAll bool, page, limit int) ([]models.Todo, int64, error) {
	var (
		todos []models.Todo
		count int64
	)

	queryBase := s.db.WithContext(ctx).Model(&models.Todo{}).Order("id ASC")
	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	if err := queryBase.Find(&todos).Error; err != nil {
		return nil, 0, fmt.Errorf("list all todos: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.Todo{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count todos: %w", err)
	}

	return todos, count, nil
}
