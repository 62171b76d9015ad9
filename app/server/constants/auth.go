package constants

import "time"

const (
	AuthTokenDuration = 20 * time.Minute // 登录令牌有效期
	AuthTokenType     = "bearer"
)

const (
	PasswordMinLength = 6
)

// 生产环境中拒绝使用的签名密钥（曾出现在示例代码中）
const (
	SignatureSecretKeyMinLength = 32
	SignatureSecretKeyExample   = "bf75bf97eb8839552b6d64790c35fdecbe8874bd1791917b650494d3d54c60b5"
)
