package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arkanhadi/kurir/internal/pkg/models"
)

// ZapLogger wraps zap with the outputs used across services
type ZapLogger struct {
	*zap.Logger
	filePath string
	file     *os.File
}

// NewZapLogger creates a new application logger writing JSON to stdout and,
// when a file path is configured, to a log file as well.
func NewZapLogger(config models.LoggerConfig) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	appLogger := &ZapLogger{}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if config.FilePath != "" {
		file, err := openLogFile(config.FilePath)
		if err != nil {
			return nil, err
		}
		appLogger.filePath = config.FilePath
		appLogger.file = file
		syncers = append(syncers, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(syncers...), level)
	appLogger.Logger = zap.New(core, zap.AddCaller())

	return appLogger, nil
}

func openLogFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Close flushes buffered entries and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}
