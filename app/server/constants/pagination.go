package constants

import "math"

const (
	PaginationDefaultLimit = 100
	PaginationMaxLimit     = 1000 // 超过时按此值截断

	// 页码上限，保证 (page-1)*limit 不会溢出 int
	PaginationMaxPage = math.MaxInt / PaginationMaxLimit
)
