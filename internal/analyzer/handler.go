package analyzer

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AnalyzeHandler accepts a document upload (multipart field "document") and
// returns the analysis. Only the filename is inspected for validation; the
// analysis itself is the stub above.
func AnalyzeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("document")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "document file required")
		}

		name := strings.ToLower(file.Filename)
		if !strings.HasSuffix(name, ".pdf") && !strings.HasSuffix(name, ".doc") && !strings.HasSuffix(name, ".docx") {
			return fiber.NewError(fiber.StatusBadRequest, "document must be a PDF or Word file")
		}

		return c.JSON(Analyze(file.Filename))
	}
}
