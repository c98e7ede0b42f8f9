package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"portfolio-app/config"
	"portfolio-app/database"
	"portfolio-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.JWT_SECRET = "test-secret"
	config.ADMIN_EMAIL = "admin@example.com"
	config.ADMIN_PASSWORD = "admin-pass-1"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(t.Name()))
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.POST("/login", Login)
	r.GET("/me", withUserID(1), GetCurrentUser)
	r.POST("/change-password", withUserID(1), ChangePassword)
	return r
}

// withUserID stands in for the JWT middleware.
func withUserID(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Next()
	}
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSeedAdmin(t *testing.T) {
	setupTest(t)
	require.NoError(t, SeedAdmin(database.DB))

	var admin users.User
	require.NoError(t, database.DB.Where("email = ?", config.ADMIN_EMAIL).First(&admin).Error)
	assert.Equal(t, "admin", admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(config.ADMIN_PASSWORD)))

	// idempotent: seeding again neither fails nor duplicates
	require.NoError(t, SeedAdmin(database.DB))
	var count int64
	database.DB.Model(&users.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	r := setupTest(t)
	require.NoError(t, SeedAdmin(database.DB))

	w := doJSON(r, http.MethodPost, "/login", gin.H{
		"email":    config.ADMIN_EMAIL,
		"password": config.ADMIN_PASSWORD,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(config.JWT_SECRET), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, config.ADMIN_EMAIL, claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupTest(t)
	require.NoError(t, SeedAdmin(database.DB))

	w := doJSON(r, http.MethodPost, "/login", gin.H{
		"email":    config.ADMIN_EMAIL,
		"password": "wrong-pass-1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/login", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever-1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword(t *testing.T) {
	r := setupTest(t)
	require.NoError(t, SeedAdmin(database.DB))

	w := doJSON(r, http.MethodPost, "/change-password", gin.H{
		"old_password": config.ADMIN_PASSWORD,
		"new_password": "brand-new-pw1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// old password no longer works
	w = doJSON(r, http.MethodPost, "/login", gin.H{
		"email":    config.ADMIN_EMAIL,
		"password": config.ADMIN_PASSWORD,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/login", gin.H{
		"email":    config.ADMIN_EMAIL,
		"password": "brand-new-pw1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChangePasswordRejectsWeakOrWrong(t *testing.T) {
	r := setupTest(t)
	require.NoError(t, SeedAdmin(database.DB))

	w := doJSON(r, http.MethodPost, "/change-password", gin.H{
		"old_password": config.ADMIN_PASSWORD,
		"new_password": "short1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/change-password", gin.H{
		"old_password": "not-the-password1",
		"new_password": "valid-enough-1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCurrentUser(t *testing.T) {
	r := setupTest(t)
	require.NoError(t, SeedAdmin(database.DB))

	w := doJSON(r, http.MethodGet, "/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, config.ADMIN_EMAIL, resp["email"])
	assert.Equal(t, "admin", resp["role"])
}
