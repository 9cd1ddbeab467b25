package router

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware configures CORS from CORS_ORIGIN. Credentials are enabled
// because the session rides in a cookie, and fiber rejects credentials with a
// wildcard origin, so an unset CORS_ORIGIN falls back to the local frontend.
func CorsMiddleware() fiber.Handler {
	origin := strings.TrimSpace(os.Getenv("CORS_ORIGIN"))
	if origin == "" {
		origin = "http://localhost:3000"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	})
}
