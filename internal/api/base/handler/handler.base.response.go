// Package basehdl cung cấp handler CRUD generic và chuẩn response cho mọi domain.
package basehdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"chat_grow/internal/common"
	"chat_grow/internal/logger"
)

// JSONResponse trả JSON với charset utf-8 rõ ràng.
func JSONResponse(c fiber.Ctx, statusCode int, payload fiber.Map) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(payload)
}

// HandleResponse trả response theo format chuẩn {code, message, data, status}.
// Nếu err là *common.Error thì dùng status code và mã lỗi của nó.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		var appErr *common.Error
		if errors.As(err, &appErr) {
			payload := fiber.Map{
				"code":    appErr.Code.Code,
				"message": appErr.Message,
				"status":  "error",
			}
			if appErr.Details != nil {
				payload["details"] = appErr.Details
			}
			return JSONResponse(c, appErr.StatusCode, payload)
		}

		logger.WithRequest(c).WithError(err).Error("Unhandled error")
		return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": common.MsgInternalError,
			"status":  "error",
		})
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// SafeHandlerWrapper bọc handler với recover, panic trong handler không làm sập app.
func SafeHandlerWrapper(handler func(c fiber.Ctx) error) func(c fiber.Ctx) error {
	return func(c fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.WithRequest(c).WithField("panic", r).Error("Handler panic recovered")
				_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
					"code":    common.ErrCodeInternalServer.Code,
					"message": common.MsgInternalError,
					"status":  "error",
				})
			}
		}()
		return handler(c)
	}
}
