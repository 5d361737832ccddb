package authController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/harshrjgithub/YouTube-LMS/config"
	"github.com/harshrjgithub/YouTube-LMS/database"
	"github.com/harshrjgithub/YouTube-LMS/models"
	authValidator "github.com/harshrjgithub/YouTube-LMS/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func authTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		Env:       "test",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	app := fiber.New()
	app.Post("/register", authValidator.Register(), Register)
	app.Post("/login", authValidator.Login(), Login)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, target string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRegister(t *testing.T) {
	app, db := authTestApp(t)

	status, body := postJSON(t, app, "/register", fiber.Map{
		"name":     "New Student",
		"email":    "Student@Example.COM",
		"password": "secret123",
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["status"])

	// Email is stored lowercased; the password never is stored in clear
	var user models.User
	require.NoError(t, db.Where("email = ?", "student@example.com").First(&user).Error)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := authTestApp(t)

	payload := fiber.Map{"name": "Student", "email": "dup@example.com", "password": "secret123"}

	status, _ := postJSON(t, app, "/register", payload)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/register", payload)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Email is already registered!", body["message"])
}

func TestRegisterValidation(t *testing.T) {
	app, _ := authTestApp(t)

	status, _ := postJSON(t, app, "/register", fiber.Map{
		"name":     "",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestLogin(t *testing.T) {
	app, _ := authTestApp(t)

	status, _ := postJSON(t, app, "/register", fiber.Map{
		"name": "Student", "email": "login@example.com", "password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/login", fiber.Map{
		"email": "login@example.com", "password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := authTestApp(t)

	status, _ := postJSON(t, app, "/register", fiber.Map{
		"name": "Student", "email": "login@example.com", "password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/login", fiber.Map{
		"email": "login@example.com", "password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Incorrect email or password!", body["message"])
}

func TestLoginUnknownEmail(t *testing.T) {
	app, _ := authTestApp(t)

	status, _ := postJSON(t, app, "/login", fiber.Map{
		"email": "nobody@example.com", "password": "whatever",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}
