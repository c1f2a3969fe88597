// Package middleware chứa các middleware xác thực và tenant context.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "chat_grow/internal/api/base/handler"
	"chat_grow/internal/common"
	"chat_grow/internal/global"
)

// TokenClaims là claims của JWT: user và business (tenant) của token.
type TokenClaims struct {
	UserID     string `json:"userId"`
	BusinessID string `json:"businessId"`
	jwt.RegisteredClaims
}

// AuthMiddleware xác thực Bearer token, extract businessId và set vào locals.
// Mọi route không public đều đi qua middleware này; businessId trong locals
// là nguồn duy nhất để scope dữ liệu theo tenant.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			return basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		claims := &TokenClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})
		if err != nil || !token.Valid {
			if err != nil && strings.Contains(err.Error(), "expired") {
				return basehdl.HandleResponse(c, nil, common.ErrTokenExpired)
			}
			return basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
		}

		businessID, err := primitive.ObjectIDFromHex(claims.BusinessID)
		if err != nil || businessID.IsZero() {
			return basehdl.HandleResponse(c, nil, common.ErrTenantMissing)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("business_id", businessID)
		return c.Next()
	}
}

// extractBearerToken lấy token từ header Authorization dạng "Bearer <token>".
func extractBearerToken(c fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
