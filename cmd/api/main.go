package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hemanthreddy-komma/Legal-IT/internal/auth"
	"github.com/hemanthreddy-komma/Legal-IT/internal/cases"
	"github.com/hemanthreddy-komma/Legal-IT/internal/defense"
	apphttp "github.com/hemanthreddy-komma/Legal-IT/internal/http"
	"github.com/hemanthreddy-komma/Legal-IT/internal/router"
	"github.com/hemanthreddy-komma/Legal-IT/internal/users"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	secret := mustJWTSecret()
	production := strings.EqualFold(os.Getenv("ENV"), "production")

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // document uploads
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware())
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	authHandler := &apphttp.AuthHandler{
		Users:        users.NewRepository(pool),
		Secret:       secret,
		SecureCookie: production,
		AuditDB:      pool,
	}
	defenseHandler := defense.NewHandler(cases.NewRepository(pool), pool)

	r := &router.Router{
		AuthHandler:    authHandler,
		DefenseHandler: defenseHandler,
		AuthMW:         auth.RequireAuth(secret),
	}
	r.RegisterRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Listening on port", port)
	log.Fatal(app.Listen(":" + port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}

// mustJWTSecret loads JWT_SECRET from the environment or exits the process.
// A missing signing secret is a fatal startup condition, never a per-request
// error.
func mustJWTSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	return []byte(secret)
}
