package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thejerf/abtime"
)

var (
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
)

type JWT struct {
	key    []byte
	clock  abtime.AbstractTime
	parser *jwt.Parser
}

type User struct {
	Username string
	ID       uint
	Role     string
	Expires  int64 // Unix second
}

type claims struct {
	UserID uint   `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Option func(*JWT)

// WithClock 替换时间来源，签发和校验都以它为准
func WithClock(clock abtime.AbstractTime) Option {
	return func(j *JWT) {
		j.clock = clock
	}
}

func New(key string, opts ...Option) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	j := &JWT{
		key:   []byte(key),
		clock: abtime.NewRealTime(),
	}
	for _, opt := range opts {
		opt(j)
	}

	// 只接受 HS256 ，且必须带有过期时间
	j.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.clock.Now),
	)

	return j, nil
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("%w: token string is empty", ErrMalformed)
	}

	// 映射字段
	c := &claims{}
	if _, err := j.parser.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}); err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %w", ErrExpired, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	user := &User{
		Username: c.Subject,
		ID:       c.UserID,
		Role:     c.Role,
	}
	if c.ExpiresAt != nil {
		user.Expires = c.ExpiresAt.Unix()
	}

	return user, nil
}

// SignToken 签出一个 ttl 之后过期的令牌， user.Expires 会被忽略
func (j *JWT) SignToken(user *User, ttl time.Duration) (string, error) {
	now := j.clock.Now()

	// 创建声明
	c := claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	// 签名并返回
	signed, err := token.SignedString(j.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
