package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/viann980/Jadwal-Integrasi-ai/config"
)

const defaultService = "jadwal-kampus"

// NewLogger 根据配置初始化 Zap 日志实例
//
// 每条日志固定带 service 字段（log.service），额外字段由调用方追加，
// 如 data_source。输出目标由 log.output 决定：stdout / stderr / 文件路径。
func NewLogger(cfg *config.LogConfig, fields ...zap.Field) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "console":
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	sink, _, err := zap.Open(output)
	if err != nil {
		return nil, fmt.Errorf("打开日志输出 %q 失败: %w", output, err)
	}

	service := cfg.Service
	if service == "" {
		service = defaultService
	}
	base := append([]zap.Field{zap.String("service", service)}, fields...)

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(level))
	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.ErrorOutput(sink),
		zap.Fields(base...),
	), nil
}
