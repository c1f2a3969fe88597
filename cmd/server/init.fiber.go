package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	basehdl "chat_grow/internal/api/base/handler"
	bookingrouter "chat_grow/internal/api/booking/router"
	businessrouter "chat_grow/internal/api/business/router"
	crmrouter "chat_grow/internal/api/crm/router"
	growthrouter "chat_grow/internal/api/growth/router"
	landingrouter "chat_grow/internal/api/landing/router"
	paymentrouter "chat_grow/internal/api/payment/router"
	apirouter "chat_grow/internal/api/router"
	"chat_grow/internal/common"
	"chat_grow/internal/global"
	"chat_grow/internal/logger"
)

// registerSystem đăng ký route system (health check), không cần auth.
func registerSystem(v1 fiber.Router) error {
	handler := basehdl.NewSystemHandler()
	return apirouter.RegisterRouteWithMiddleware(v1, "/system", fiber.MethodGet, "/health", nil, handler.HandleHealth)
}

// InitFiberApp khởi tạo ứng dụng Fiber với middleware stack và routes.
func InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "ChatGrow API",
		ServerHeader:  "ChatGrow API",
		StrictRouting: true,
		CaseSensitive: true,
		UnescapePath:  true,

		BodyLimit:       10 * 1024 * 1024,
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := common.MsgInternalError
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusNotFound, fiber.StatusConflict:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"message":   message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// 1. Request ID - trace mỗi request
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. CORS - đặt trước các middleware khác để xử lý preflight
	app.Use(cors.New(buildCorsConfig()))

	// 3. Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate limiting theo IP
	setupRateLimiter(app)

	// 5. Recover - panic trong handler không làm sập app
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": common.MsgInternalError,
				"status":  "error",
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/system/health"
		},
	}))

	// Đăng ký routes của toàn bộ domain
	if err := apirouter.SetupRoutes(app,
		registerSystem,
		businessrouter.Register,
		crmrouter.Register,
		bookingrouter.Register,
		paymentrouter.Register,
		landingrouter.Register,
		growthrouter.Register,
	); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}

// buildCorsConfig dựng cấu hình CORS từ server config.
func buildCorsConfig() cors.Config {
	corsOrigins := global.ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	return cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}
}

// setupRateLimiter bật rate limit theo IP nếu được cấu hình.
func setupRateLimiter(app *fiber.App) {
	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	if !cfg.RateLimit_Enabled || cfg.RateLimit_Max <= 0 {
		log.Info("Rate limiting disabled")
		return
	}

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit_Max,
		Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    common.ErrCodeBusinessOperation.Code,
				"message": common.MsgTooManyRequests,
				"status":  "error",
			})
		},
		Next: func(c fiber.Ctx) bool {
			// Bỏ qua health check và preflight
			return c.Path() == "/api/v1/system/health" || c.Method() == "OPTIONS"
		},
	}))
	log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
}
