package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	growthsvc "chat_grow/internal/api/growth/service"
	"chat_grow/internal/global"
	"chat_grow/internal/logger"
	"chat_grow/internal/worker"
)

// initLogger khởi tạo logger cho toàn bộ ứng dụng.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// resolvePath resolve đường dẫn tương đối từ thư mục chứa config/env.
func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	currentDir, err := os.Getwd()
	if err != nil {
		return path
	}
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(currentDir, path)
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return path
		}
		currentDir = parentDir
	}
}

// main_thread khởi tạo và chạy Fiber server trên main thread.
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	address := ":" + cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}
		tlsListener := tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		})

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// startWorkers khởi tạo growth service dùng chung cho các worker, đăng ký
// subscription đánh dấu dirty day và chạy các background worker.
func startWorkers(ctx context.Context) {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	growthService, err := growthsvc.NewGrowthService()
	if err != nil {
		log.WithError(err).Error("Failed to create growth service, continuing without growth workers")
		return
	}
	growthService.RegisterDataChangeSubscriptions()
	log.Info("📊 [GROWTH] Data change subscriptions registered")

	runWorker := func(name string, start func(context.Context)) {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic":  r,
						"worker": name,
					}).Error("Worker goroutine panic")
				}
			}()
			start(ctx)
		}()
	}

	dirtyWorker := worker.NewGrowthDirtyWorker(
		growthService,
		time.Duration(cfg.GrowthDirtyIntervalS)*time.Second,
		cfg.GrowthDirtyBatchSize,
	)
	runWorker("growth_dirty", dirtyWorker.Start)

	dailyWorker := worker.NewGrowthDailyWorker(
		growthService,
		time.Duration(cfg.GrowthDailyIntervalS)*time.Second,
	)
	runWorker("growth_daily", dailyWorker.Start)

	retentionWorker, err := worker.NewVisitRetentionWorker(cfg.GrowthVisitRetentionD)
	if err != nil {
		log.WithError(err).Error("Failed to create visit retention worker, continuing without it")
	} else {
		runWorker("visit_retention", retentionWorker.Start)
	}

	log.Info("Background workers started successfully")
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry collections và indexes
	InitRegistry()

	// Chạy các background worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx)

	// Chạy Fiber server trên main thread
	main_thread()
}
