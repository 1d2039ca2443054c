package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recruitportal/internal/config"
	"recruitportal/internal/models"
)

// Claims - кастомные claims сессии.
// Роль кладется в токен при логине и восстанавливается на каждом запросе.
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken выпускает подписанный HS256 access token с ролью в claims
func GenerateToken(userID string, role models.UserRole) (string, error) {
	cfg := config.GetConfig()

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken проверяет подпись и срок действия токена.
// Fail closed: любая проблема с токеном дает ErrInvalidToken.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
