// Package apirouter cung cấp hạ tầng đăng ký route: prefix chuẩn,
// đăng ký route kèm middleware và bộ route CRUD dùng chung cho mọi resource.
package apirouter

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// RoutePrefix chứa các prefix chuẩn của API.
var RoutePrefix = struct {
	Base string
	V1   string
}{
	Base: "/api",
	V1:   "/api/v1",
}

// CRUDHandler là tập handler CRUD chuẩn mà BaseHandler cung cấp.
type CRUDHandler interface {
	HandleInsertOne(c fiber.Ctx) error
	HandleFind(c fiber.Ctx) error
	HandleFindWithPagination(c fiber.Ctx) error
	HandleFindById(c fiber.Ctx) error
	HandleUpdateById(c fiber.Ctx) error
	HandleDeleteById(c fiber.Ctx) error
	HandleCount(c fiber.Ctx) error
}

// CRUDConfig bật/tắt từng nhóm operation khi đăng ký CRUD route cho một resource.
type CRUDConfig struct {
	EnableCreate bool
	EnableRead   bool
	EnableUpdate bool
	EnableDelete bool
}

// ReadWriteConfig bật toàn bộ operation.
func ReadWriteConfig() CRUDConfig {
	return CRUDConfig{EnableCreate: true, EnableRead: true, EnableUpdate: true, EnableDelete: true}
}

// ReadOnlyConfig chỉ bật operation đọc.
func ReadOnlyConfig() CRUDConfig {
	return CRUDConfig{EnableRead: true}
}

// RegisterRouteWithMiddleware đăng ký một route với danh sách middleware.
// Dùng group riêng cho từng route và gắn middleware qua Use vì Fiber v3
// chưa nhận middleware truyền thẳng vào app.Post/Get.
func RegisterRouteWithMiddleware(parent fiber.Router, basePath, method, subPath string, middlewares []fiber.Handler, handler fiber.Handler) error {
	fullPath := basePath + subPath
	group := parent.Group(fullPath)
	for _, m := range middlewares {
		group.Use(m)
	}

	switch strings.ToUpper(method) {
	case fiber.MethodGet:
		group.Get("", handler)
	case fiber.MethodPost:
		group.Post("", handler)
	case fiber.MethodPut:
		group.Put("", handler)
	case fiber.MethodPatch:
		group.Patch("", handler)
	case fiber.MethodDelete:
		group.Delete("", handler)
	default:
		return fmt.Errorf("method %s không được hỗ trợ", method)
	}
	return nil
}

// RegisterCRUDRoutes đăng ký bộ route CRUD chuẩn cho một resource.
// Path convention: /insert-one, /find, /find-with-pagination,
// /find-by-id/:id, /update-by-id/:id, /delete-by-id/:id, /count.
func RegisterCRUDRoutes(parent fiber.Router, basePath string, handler CRUDHandler, middlewares []fiber.Handler, cfg CRUDConfig) error {
	type routeDef struct {
		method  string
		subPath string
		handler fiber.Handler
		enabled bool
	}

	routes := []routeDef{
		{fiber.MethodPost, "/insert-one", handler.HandleInsertOne, cfg.EnableCreate},
		{fiber.MethodGet, "/find", handler.HandleFind, cfg.EnableRead},
		{fiber.MethodGet, "/find-with-pagination", handler.HandleFindWithPagination, cfg.EnableRead},
		{fiber.MethodGet, "/find-by-id/:id", handler.HandleFindById, cfg.EnableRead},
		{fiber.MethodPut, "/update-by-id/:id", handler.HandleUpdateById, cfg.EnableUpdate},
		{fiber.MethodDelete, "/delete-by-id/:id", handler.HandleDeleteById, cfg.EnableDelete},
		{fiber.MethodGet, "/count", handler.HandleCount, cfg.EnableRead},
	}

	for _, r := range routes {
		if !r.enabled {
			continue
		}
		if err := RegisterRouteWithMiddleware(parent, basePath, r.method, r.subPath, middlewares, r.handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterFunc là hàm đăng ký route của một domain.
type RegisterFunc func(v1 fiber.Router) error

// SetupRoutes tạo group /api/v1 và gọi lần lượt các hàm đăng ký domain.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	v1 := app.Group(RoutePrefix.V1)
	for _, reg := range regs {
		if err := reg(v1); err != nil {
			return err
		}
	}
	return nil
}
