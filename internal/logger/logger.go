// Package logger cấu hình hệ thống logging: logrus + lumberjack rotation,
// tách logger theo tên (app, audit, error).
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig chứa cấu hình logging.
type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json hoặc text
	Output     string // stdout, file, both
	LogPath    string // thư mục chứa file log
	MaxSize    int    // MB mỗi file
	MaxBackups int    // số file cũ giữ lại
	MaxAge     int    // số ngày giữ log
	Compress   bool   // nén file cũ
}

// DefaultConfig đọc cấu hình logging từ environment variables, có default hợp lý.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      getEnvOr("LOG_LEVEL", "info"),
		Format:     getEnvOr("LOG_FORMAT", "json"),
		Output:     getEnvOr("LOG_OUTPUT", "both"),
		LogPath:    getEnvOr("LOG_PATH", "logs"),
		MaxSize:    getEnvIntOr("LOG_MAX_SIZE", 50),
		MaxBackups: getEnvIntOr("LOG_MAX_BACKUPS", 5),
		MaxAge:     getEnvIntOr("LOG_MAX_AGE", 30),
		Compress:   getEnvOr("LOG_COMPRESS", "true") == "true",
	}
	return cfg
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex
	config    *LogConfig
)

// Init khởi tạo hệ thống logging. cfg nil sẽ dùng DefaultConfig.
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if cfg.Output == "file" || cfg.Output == "both" {
		if err := os.MkdirAll(cfg.LogPath, 0755); err != nil {
			return fmt.Errorf("không tạo được thư mục logs: %w", err)
		}
	}
	return nil
}

// GetLogger trả về logger theo tên (app, audit, error), tạo mới nếu chưa có.
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("logger init thất bại: %v", err))
		}
	}

	if l, ok := loggers[name]; ok {
		return l
	}
	l := createLogger(name)
	loggers[name] = l
	return l
}

// createLogger tạo logger mới theo cấu hình chung.
func createLogger(name string) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if config.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	var writers []io.Writer
	if config.Output == "file" || config.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(config.LogPath, name+".log"),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	if config.Output == "stdout" || config.Output == "both" {
		writers = append(writers, os.Stdout)
	}
	if len(writers) > 0 {
		l.SetOutput(io.MultiWriter(writers...))
	}

	return l
}

// GetAppLogger trả về logger chính của ứng dụng.
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetAuditLogger trả về logger cho audit (thay đổi dữ liệu, recompute...).
func GetAuditLogger() *logrus.Logger {
	return GetLogger("audit")
}

// GetErrorLogger trả về logger cho errors.
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}
