// Package middleware - Test xác thực JWT và tenant scoping qua Fiber app.
package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chat_grow/config"
	"chat_grow/internal/global"
)

const testSecret = "test-secret"

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	global.ServerConfig = &config.Configuration{JwtSecret: testSecret}

	app := fiber.New()
	group := app.Group("/protected")
	group.Use(AuthMiddleware())
	group.Get("", func(c fiber.Ctx) error {
		businessID := c.Locals("business_id").(primitive.ObjectID)
		return c.JSON(fiber.Map{"businessId": businessID.Hex()})
	})
	return app
}

func signToken(t *testing.T, claims TokenClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err, "ký token test thất bại")
	return token
}

func TestAuthMiddleware_TokenHopLe(t *testing.T) {
	app := setupTestApp(t)
	businessID := primitive.NewObjectID()

	token := signToken(t, TokenClaims{
		UserID:     "user-1",
		BusinessID: businessID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "token hợp lệ phải được đi qua")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, businessID.Hex(), body["businessId"], "businessId trong locals phải khớp token")
}

func TestAuthMiddleware_ThieuToken(t *testing.T) {
	app := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "thiếu token phải trả 401")
}

func TestAuthMiddleware_TokenSaiChuKy(t *testing.T) {
	app := setupTestApp(t)

	claims := TokenClaims{
		UserID:     "user-1",
		BusinessID: primitive.NewObjectID().Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("sai-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token sai chữ ký phải trả 401")
}

func TestAuthMiddleware_TokenHetHan(t *testing.T) {
	app := setupTestApp(t)

	token := signToken(t, TokenClaims{
		UserID:     "user-1",
		BusinessID: primitive.NewObjectID().Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token hết hạn phải trả 401")
}

func TestAuthMiddleware_TokenKhongCoBusinessId(t *testing.T) {
	app := setupTestApp(t)

	token := signToken(t, TokenClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token không gắn business phải trả 401")
}
