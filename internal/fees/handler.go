package fees

import (
	"github.com/gofiber/fiber/v2"
)

// EstimateHandler validates the estimator parameters and returns the fee
// breakdown.
func EstimateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p Params
		if err := c.BodyParser(&p); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid body")
		}

		p.Location = normalizeLocation(p.Location)
		switch p.Location {
		case "urban", "suburban", "rural":
		default:
			return fiber.NewError(fiber.StatusBadRequest, "location must be urban, suburban or rural")
		}
		if p.CaseComplexity < 0 || p.CaseComplexity > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "caseComplexity must be between 0 and 100")
		}
		if p.CaseType == "" {
			return fiber.NewError(fiber.StatusBadRequest, "caseType required")
		}

		return c.JSON(EstimateFees(p))
	}
}

// CaseTypesHandler lists the case types the estimator knows about.
func CaseTypesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"caseTypes": CaseTypes()})
	}
}
