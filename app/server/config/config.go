package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBDriver              string // 数据库类型： postgres 或 sqlite
		DBConnectionString    string // 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串，留空则不使用缓存
	}
	Security struct {
		SignatureSecretKey     string // 签名密钥，用于产生签名（例如 JWT ），更新会导致旧有会话失效
		AllowAdminRegistration bool   // 是否允许在注册时直接申请管理员角色
		InitialAdminPassword   string // 用户表为空时创建初始管理员 admin 使用的密码，留空则不创建
	}
}
