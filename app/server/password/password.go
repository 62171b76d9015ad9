// Package password hashes and verifies account passwords.
//
// New hashes are argon2id PHC strings with a random salt embedded, so hashing
// the same password twice never yields the same string. Hashes written by the
// previous deployment are bcrypt; they are still accepted by Verify and
// reported by NeedsRehash so callers can upgrade them after a successful login.
package password

import (
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

type Hasher struct {
	params *argon2id.Params
}

// New 使用指定参数创建 Hasher ， params 为 nil 时使用 argon2id.DefaultParams
func New(params *argon2id.Params) *Hasher {
	if params == nil {
		params = argon2id.DefaultParams
	}
	return &Hasher{params: params}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := argon2id.CreateHash(plaintext, h.params)
	if err != nil {
		return "", fmt.Errorf("create hash: %w", err)
	}
	return hash, nil
}

// Verify 校验密码，不匹配或 hash 格式错误时都只返回 false
func (h *Hasher) Verify(plaintext, hash string) bool {
	if isBcrypt(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	}

	match, err := argon2id.ComparePasswordAndHash(plaintext, hash)
	if err != nil {
		return false
	}
	return match
}

// NeedsRehash 报告 hash 是否为旧算法产生，需要在下次登录成功后重新生成
func (h *Hasher) NeedsRehash(hash string) bool {
	return isBcrypt(hash)
}

func isBcrypt(hash string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}
	return false
}
