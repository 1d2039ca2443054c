package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"recruitportal/pkg/apperrors"
)

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter - fixed-window лимитер на Lua-скрипте.
// Устойчив к отсутствию Redis: nil-лимитер всегда пропускает.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

// Allow проверяет, укладывается ли key в limit за window.
// При любой ошибке Redis пропускаем запрос: лимитер - защита,
// а не точка отказа.
func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}

// LoginRateLimit ограничивает попытки логина по IP клиента
func LoginRateLimit(limiter *RedisLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow("login:"+c.ClientIP(), limit, window) {
			apperrors.HandleError(c, apperrors.ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
