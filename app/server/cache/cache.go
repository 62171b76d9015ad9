// Package cache keeps rendered user profiles in Redis so that repeated
// profile reads do not hit the database. A nil Redis client turns every
// operation into a no-op.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"todo-service/app/server/constants"
)

type Profiles struct {
	rdb *redis.Client
	l   *zap.Logger
}

func NewProfiles(rdb *redis.Client, l *zap.Logger) *Profiles {
	return &Profiles{rdb: rdb, l: l}
}

// Get 读取缓存到 v ，未命中或出错时返回 false
func (p *Profiles) Get(ctx context.Context, id uint, v interface{}) bool {
	if p.rdb == nil {
		return false
	}

	cacheKey := fmt.Sprintf(constants.CacheKeyUserProfile, id)
	cacheBytes, err := p.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.l.Error("failed to query cache for user profile", zap.Uint("id", id), zap.Error(err))
		}
		return false
	}

	if err = json.Unmarshal(cacheBytes, v); err != nil {
		p.l.Error("failed to unmarshal user profile", zap.Uint("id", id), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// 可能是无效的缓存，清理掉
		p.rdb.Del(ctx, cacheKey)
		return false
	}

	return true
}

func (p *Profiles) Set(ctx context.Context, id uint, v interface{}) {
	if p.rdb == nil {
		return
	}

	cacheBytes, err := json.Marshal(v)
	if err != nil {
		p.l.Error("failed to marshal user profile", zap.Uint("id", id), zap.Error(err))
		return
	}

	if err = p.rdb.Set(ctx, fmt.Sprintf(constants.CacheKeyUserProfile, id), cacheBytes, constants.CacheExpireUserProfile).Err(); err != nil {
		p.l.Error("failed to cache user profile", zap.Uint("id", id), zap.Error(err))
	}
}

// Invalidate 在用户信息变更后调用
func (p *Profiles) Invalidate(ctx context.Context, id uint) {
	if p.rdb == nil {
		return
	}

	if err := p.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeyUserProfile, id)).Err(); err != nil {
		p.l.Error("failed to invalidate user profile", zap.Uint("id", id), zap.Error(err))
	}
}
