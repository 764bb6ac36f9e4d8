package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/decker502/starfall/pkg/config"
)

// NewLogger 按日志配置创建 zap 日志
// format 为 "json" 时使用生产配置，否则使用带颜色的控制台输出；无法识别的级别按 info 处理
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	zapCfg := loggerConfig(cfg)
	return zapCfg.Build()
}

func loggerConfig(cfg config.LoggingConfig) zap.Config {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg
}
