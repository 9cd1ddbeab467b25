package chat

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type chatRequest struct {
	Query   string    `json:"query"`
	History []Message `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// RespondHandler answers a legal question from the chat UI.
func RespondHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body chatRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}

		body.Query = strings.TrimSpace(body.Query)
		if body.Query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "query required")
		}
		for _, m := range body.History {
			if !m.Role.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "history roles must be user or assistant")
			}
		}

		return c.JSON(chatResponse{Reply: Respond(body.Query, body.History)})
	}
}
