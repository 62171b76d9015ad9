// Package auth turns credentials into authenticated users and issues the
// session tokens that the middlewares later validate.
package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"todo-service/app/server/constants"
	"todo-service/app/server/jwt"
	"todo-service/app/server/models"
	"todo-service/app/server/password"
	"todo-service/app/server/store"
)

var (
	// ErrAuthFailure 不区分用户不存在、密码错误和账号停用，避免泄露用户是否存在
	ErrAuthFailure       = errors.New("authentication failed")
	ErrWeakPassword      = fmt.Errorf("password should be at least %d characters", constants.PasswordMinLength)
	ErrDuplicateUsername = store.ErrDuplicateUsername
	ErrUnknownRole       = models.ErrUnknownRole
)

// UserStore is the part of the credential store the Authenticator needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

type Authenticator struct {
	l      *zap.Logger
	users  UserStore
	hasher *password.Hasher
	jwt    *jwt.JWT

	dummyHash string // 用户不存在时也做一次校验，让耗时保持一致
}

type NewUser struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      string
}

func New(l *zap.Logger, users UserStore, hasher *password.Hasher, j *jwt.JWT) (*Authenticator, error) {
	dummyHash, err := hasher.Hash("dummy password for timing")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &Authenticator{
		l:         l,
		users:     users,
		hasher:    hasher,
		jwt:       j,
		dummyHash: dummyHash,
	}, nil
}

func (a *Authenticator) Authenticate(ctx context.Context, username, plaintext string) (*models.User, error) {
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			a.hasher.Verify(plaintext, a.dummyHash)
			return nil, ErrAuthFailure
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !a.hasher.Verify(plaintext, user.PasswordHash) || !user.IsActive {
		return nil, ErrAuthFailure
	}

	// 旧算法产生的密码，登录成功后顺便升级
	if a.hasher.NeedsRehash(user.PasswordHash) {
		if newHash, err := a.hasher.Hash(plaintext); err != nil {
			a.l.Warn("failed to rehash legacy password", zap.Uint("id", user.ID), zap.Error(err))
		} else if err = a.users.UpdatePassword(ctx, user.ID, newHash); err != nil {
			a.l.Warn("failed to store upgraded password", zap.Uint("id", user.ID), zap.Error(err))
		} else {
			user.PasswordHash = newHash
		}
	}

	return user, nil
}

func (a *Authenticator) IssueToken(user *models.User) (string, error) {
	return a.jwt.SignToken(&jwt.User{
		Username: user.Username,
		ID:       user.ID,
		Role:     string(user.Role),
	}, constants.AuthTokenDuration)
}

func (a *Authenticator) Register(ctx context.Context, req NewUser) (*models.User, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if len(req.Password) < constants.PasswordMinLength {
		return nil, ErrWeakPassword
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: passwordHash,
		IsActive:     true,
		Role:         role,
	}
	if err = a.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangePassword 校验当前密码后替换为新密码
func (a *Authenticator) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !a.hasher.Verify(current, user.PasswordHash) {
		return ErrAuthFailure
	}
	if len(next) < constants.PasswordMinLength {
		return ErrWeakPassword
	}

	newHash, err := a.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return a.users.UpdatePassword(ctx, user.ID, newHash)
}
