package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recruitportal/internal/auth"
	"recruitportal/internal/logger"
	"recruitportal/internal/models"
)

// unauthorized - единый ответ 401 для всех отказов маршрутного guard'а.
// Текст намеренно общий: требуемую роль клиенту не раскрываем.
func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// AuthMiddleware - проверка JWT и восстановление claims сессии
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			unauthorized(c)
			return
		}

		// Сохраняем claims в контекст запроса
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware - ограничение маршрута одной ролью.
// Ok тогда и только тогда, когда сессия есть И роль совпадает;
// все остальное - 401 без мутаций и side effects.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return RequireRoles(requiredRole)
}

// RequireRoles - обобщение на набор допустимых ролей.
// Поведение при одном элементе идентично RoleMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			unauthorized(c)
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			// Роль могла быть сохранена строкой
			roleStr, isString := roleVal.(string)
			if !isString {
				unauthorized(c)
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			unauthorized(c)
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetUserRole извлекает роль из контекста
func GetUserRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get("role")
	if !exists {
		return ""
	}

	if role, ok := roleVal.(models.UserRole); ok {
		return role
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr)
	}
	return ""
}
