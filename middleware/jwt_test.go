package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/harshrjgithub/YouTube-LMS/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestApp() *fiber.App {
	config.AppConfig = &config.Config{Env: "test", JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userID := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"user_id": userID})
	})
	return app
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	app := jwtTestApp()

	token, err := GenerateJWT(42, "Test User", "student", "test@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	app := jwtTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareBadPrefix(t *testing.T) {
	app := jwtTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareGarbageToken(t *testing.T) {
	app := jwtTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareWrongKey(t *testing.T) {
	config.AppConfig = &config.Config{Env: "test", JWTKey: "other-secret"}
	token, err := GenerateJWT(42, "Test User", "student", "test@example.com")
	require.NoError(t, err)

	app := jwtTestApp() // resets JWTKey to test-secret

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
