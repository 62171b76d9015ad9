package inits

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"todo-service/app/server/config"
	"todo-service/app/server/constants"
)

func Config() (*config.Config, error) {
	var cfg config.Config

	// 手动配置映射
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if driver, exist := os.LookupEnv("DB_DRIVER"); !exist {
		cfg.System.DBDriver = "postgres"
	} else if driver != "postgres" && driver != "sqlite" {
		return nil, fmt.Errorf("DB_DRIVER should be postgres or sqlite, got %q", driver)
	} else {
		cfg.System.DBDriver = driver
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// 可选，不设置则不启用缓存
	cfg.System.RedisConnectionString = os.Getenv("REDIS_CONN")

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist || sigsk == "" {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if cfg.System.IsProd {
		// 生产环境中不允许弱密钥或示例密钥
		if cfg.Security.SignatureSecretKey == constants.SignatureSecretKeyExample {
			return nil, fmt.Errorf("SIGNATURE_SECRET_KEY must not be the example key in production")
		}
		if len(cfg.Security.SignatureSecretKey) < constants.SignatureSecretKeyMinLength {
			return nil, fmt.Errorf("SIGNATURE_SECRET_KEY should be at least %d bytes in production", constants.SignatureSecretKeyMinLength)
		}
	}

	if allowStr, exist := os.LookupEnv("ALLOW_ADMIN_REGISTRATION"); exist {
		allow, err := strconv.ParseBool(allowStr)
		if err != nil {
			return nil, fmt.Errorf("ALLOW_ADMIN_REGISTRATION should be a boolean")
		}
		cfg.Security.AllowAdminRegistration = allow
	}

	cfg.Security.InitialAdminPassword = os.Getenv("INITIAL_ADMIN_PASSWORD")

	return &cfg, nil
}
