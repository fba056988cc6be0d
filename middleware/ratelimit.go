package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agendafacil/backend/redis"
	"github.com/agendafacil/backend/utils"
)

// RateLimit caps requests per client IP in a fixed window, backed by the
// shared redis client. With no redis configured it is a no-op; on redis
// errors the request is let through rather than failing the booking.
func RateLimit(max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redis.Client == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.Route().Path, c.IP())
		count, err := redis.Client.Incr(c.UserContext(), key).Result()
		if err != nil {
			return c.Next()
		}
		if count == 1 {
			redis.Client.Expire(c.UserContext(), key, window)
		}
		if count > int64(max) {
			return c.Status(fiber.StatusTooManyRequests).JSON(utils.ErrorResponse{
				Message: "Too many requests, try again later",
			})
		}
		return c.Next()
	}
}
