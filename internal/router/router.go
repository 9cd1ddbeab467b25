package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hemanthreddy-komma/Legal-IT/internal/analyzer"
	"github.com/hemanthreddy-komma/Legal-IT/internal/chat"
	"github.com/hemanthreddy-komma/Legal-IT/internal/defense"
	"github.com/hemanthreddy-komma/Legal-IT/internal/fees"
	handlers "github.com/hemanthreddy-komma/Legal-IT/internal/http"
)

type Router struct {
	AuthHandler    *handlers.AuthHandler
	DefenseHandler *defense.Handler
	AuthMW         fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	authLimit := RateLimitAuth()

	app.Post("/api/auth/register", authLimit, r.AuthHandler.Register)
	app.Post("/api/auth/login", authLimit, r.AuthHandler.Login)
	app.Post("/api/auth/logout", r.AuthHandler.Logout)
	app.Get("/api/auth/status", r.AuthHandler.Status)

	app.Post("/api/defense/generate", r.AuthMW, r.DefenseHandler.Generate)
	app.Get("/api/cases", r.AuthMW, r.DefenseHandler.ListCases)
	app.Get("/api/cases/:id/document", r.AuthMW, r.DefenseHandler.Document)

	app.Post("/api/documents/analyze", r.AuthMW, analyzer.AnalyzeHandler())
	app.Post("/api/fees/estimate", fees.EstimateHandler())
	app.Get("/api/fees/case-types", fees.CaseTypesHandler())
	app.Post("/api/chat", r.AuthMW, chat.RespondHandler())
}
