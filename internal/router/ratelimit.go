package router

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimitAuth limits login/registration attempts per IP. Defaults to 10 per
// minute; RATE_LIMIT_AUTH_MAX and RATE_LIMIT_AUTH_WINDOW_SECONDS override.
func RateLimitAuth() fiber.Handler {
	max := 10
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_AUTH_MAX")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			max = parsed
		}
	}

	window := time.Minute
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_AUTH_WINDOW_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			window = time.Duration(parsed) * time.Second
		}
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too_many_requests"})
		},
	})
}
