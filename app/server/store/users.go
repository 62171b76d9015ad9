package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo-service/app/server/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.first(ctx, "username = ?", username)
}

func (s *UserStore) first(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// List 按 id 升序分页， showAll 为 true 时忽略 page 与 limit
func (s *UserStore) List(ctx context.Context, showAll bool, page, limit int) ([]models.User, int64, error) {
	var (
		users []models.User
		count int64
	)

	queryBase := s.db.WithContext(ctx).Model(&models.User{}).Order("id ASC")
	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	if err := queryBase.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	return users, count, nil
}

func (s *UserStore) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return s.updateColumn(ctx, id, "hashed_password", hash)
}

func (s *UserStore) UpdateRole(ctx context.Context, id uint, role models.Role) error {
	return s.updateColumn(ctx, id, "role", role)
}

func (s *UserStore) UpdateActive(ctx context.Context, id uint, active bool) error {
	return s.updateColumn(ctx, id, "is_active", active)
}

func (s *UserStore) updateColumn(ctx context.Context, id uint, column string, value interface{}) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("update user %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 删除用户以及其名下全部待办，在同一个事务中完成
func (s *UserStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Where("owner_id = ?", id).Delete(&models.Todo{}).Error; err != nil {
			return fmt.Errorf("delete todos of user: %w", err)
		}

		return nil
	})
}
