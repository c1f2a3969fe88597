// Package config đọc cấu hình từ file env theo GO_ENV và parse vào struct.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa toàn bộ cấu hình server, đọc từ environment variables.
type Configuration struct {
	// Server
	Address string `env:"ADDRESS" envDefault:"8080"`

	// Auth
	JwtSecret string `env:"JWT_SECRET,required"`

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"chat_grow"`

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`

	// Rate limit
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"300"`
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"` // giây

	// TLS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE" envDefault:""`
	TLSKeyFile  string `env:"TLS_KEY_FILE" envDefault:""`

	// AI insights (text-generation endpoint)
	AI_Endpoint string `env:"AI_ENDPOINT" envDefault:""`
	AI_APIKey   string `env:"AI_API_KEY" envDefault:""`
	AI_Model    string `env:"AI_MODEL" envDefault:"gpt-4o-mini"`
	AI_TimeoutS int    `env:"AI_TIMEOUT_SECONDS" envDefault:"20"`

	// Growth workers
	GrowthDirtyIntervalS  int `env:"GROWTH_DIRTY_INTERVAL_SECONDS" envDefault:"60"`
	GrowthDirtyBatchSize  int `env:"GROWTH_DIRTY_BATCH_SIZE" envDefault:"50"`
	GrowthDailyIntervalS  int `env:"GROWTH_DAILY_INTERVAL_SECONDS" envDefault:"3600"`
	GrowthVisitRetentionD int `env:"GROWTH_VISIT_RETENTION_DAYS" envDefault:"180"`
}

// getEnvPath tìm file env theo GO_ENV, đi ngược lên các thư mục cha
// cho tới khi gặp config/env/<GO_ENV>.env.
func getEnvPath() (string, error) {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("không lấy được working directory: %w", err)
	}

	for {
		envPath := filepath.Join(currentDir, "config", "env", goEnv+".env")
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("không tìm thấy file env cho GO_ENV=%s", goEnv)
		}
		currentDir = parentDir
	}
}

// NewConfig load file env (nếu có) rồi parse environment variables vào Configuration.
// File env không tồn tại không phải lỗi: khi deploy, biến môi trường được set trực tiếp.
func NewConfig() (*Configuration, error) {
	if envPath, err := getEnvPath(); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("không load được file env %s: %w", envPath, err)
		}
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse cấu hình thất bại: %w", err)
	}
	return cfg, nil
}
