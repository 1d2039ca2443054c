package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitportal/internal/auth"
	"recruitportal/internal/config"
	"recruitportal/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	config.SetConfig(cfg)
	os.Exit(m.Run())
}

func newGuardedRouter(requiredRole models.UserRole) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", AuthMiddleware(), RoleMiddleware(requiredRole), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"role":    GetUserRole(c),
		})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardAllowsMatchingRole(t *testing.T) {
	r := newGuardedRouter(models.UserRoleAdmin)
	token, err := auth.GenerateToken("adm-1", models.UserRoleAdmin)
	require.NoError(t, err)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "adm-1")
}

func TestGuardMissingToken(t *testing.T) {
	r := newGuardedRouter(models.UserRoleAdmin)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
}

func TestGuardInvalidToken(t *testing.T) {
	r := newGuardedRouter(models.UserRoleAdmin)

	w := doRequest(r, "garbage")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
}

// Несовпадение роли дает тот же 401 с тем же телом, что и отсутствие
// сессии: ответ не раскрывает, какая роль нужна маршруту.
func TestGuardWrongRoleIndistinguishable(t *testing.T) {
	r := newGuardedRouter(models.UserRoleAdmin)
	token, err := auth.GenerateToken("stu-1", models.UserRoleStudent)
	require.NoError(t, err)

	w := doRequest(r, token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
}

func TestRequireRolesAnyOf(t *testing.T) {
	r := gin.New()
	r.GET("/guarded", AuthMiddleware(), RequireRoles(models.UserRoleStudent, models.UserRoleEmployer), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, tc := range []struct {
		role models.UserRole
		want int
	}{
		{models.UserRoleStudent, http.StatusOK},
		{models.UserRoleEmployer, http.StatusOK},
		{models.UserRoleAdmin, http.StatusUnauthorized},
	} {
		token, err := auth.GenerateToken("user-1", tc.role)
		require.NoError(t, err)

		w := doRequest(r, token)
		assert.Equal(t, tc.want, w.Code, "role %s", tc.role)
	}
}

func TestNilLimiterAlwaysAllows(t *testing.T) {
	var limiter *RedisLimiter
	assert.True(t, limiter.Allow("login:1.2.3.4", 10, time.Minute))
}
