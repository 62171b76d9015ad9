package inits

import (
	"fmt"

	"go.uber.org/zap"
)

func Logger(debugMode bool) (l *zap.Logger, err error) {
	var cfg zap.Config
	if debugMode {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if l, err = cfg.Build(zap.Fields(zap.String("service", "todo-service"))); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
