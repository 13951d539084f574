package logger

import (
	"go.uber.org/zap"

	"github.com/SirClappington/ecommerce-admin-backend/internal/config"
)

// New builds the application logger. Development forces a console encoder
// at debug level regardless of the configured values.
func New(cfg config.LoggerConfig, development bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if development {
		zcfg = zap.NewDevelopmentConfig()
	}

	if !development {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = level
		if cfg.Encoding != "" {
			zcfg.Encoding = cfg.Encoding
		}
	}
	zcfg.DisableCaller = cfg.DisableCaller
	zcfg.DisableStacktrace = cfg.DisableStacktrace

	return zcfg.Build()
}
