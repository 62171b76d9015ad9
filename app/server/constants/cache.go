package constants

import "time"

const (
	CacheKeyUserProfile = "todo:user:profile:%d"
)

const (
	CacheExpireUserProfile = 1 * time.Hour
)
