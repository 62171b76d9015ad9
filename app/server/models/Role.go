package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

type Role string

const (
	RoleAdmin Role = "admin" // 管理员：可以访问 /admin 下的全部接口
	RoleUser  Role = "user"  // 普通用户：只能操作自己的数据
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// ParseRole 将字符串映射为已知角色，空字符串视为普通用户
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleUser, nil
	}

	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}

	return r, nil
}
