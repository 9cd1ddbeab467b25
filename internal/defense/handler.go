package defense

import (
	"context"
	"encoding/base64"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hemanthreddy-komma/Legal-IT/internal/audit"
	"github.com/hemanthreddy-komma/Legal-IT/internal/auth"
	"github.com/hemanthreddy-komma/Legal-IT/internal/cases"
)

// CaseStore is what the defense endpoints need from case persistence.
type CaseStore interface {
	Insert(ctx context.Context, c *cases.Case) (string, error)
	MarkPDFGenerated(ctx context.Context, id string) error
	GetByID(ctx context.Context, id, userID string) (*cases.Case, error)
	ListByUser(ctx context.Context, userID string) ([]cases.Case, error)
}

type Handler struct {
	Cases   CaseStore
	AuditDB *pgxpool.Pool
	Now     func() time.Time
}

func NewHandler(store CaseStore, auditDB *pgxpool.Pool) *Handler {
	return &Handler{Cases: store, AuditDB: auditDB, Now: time.Now}
}

type generateResponse struct {
	Success bool   `json:"success"`
	PDFURL  string `json:"pdfUrl"`
	CaseID  string `json:"caseId"`
}

func generateFailure(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

// Generate persists the intake form, derives the defense arguments, renders
// the PDF and returns it inline as a data URL. The case record and its
// pdf_generated flag are two independent writes; a failure in between leaves
// a case that simply is not marked generated yet.
func (h *Handler) Generate(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return generateFailure(c, fiber.StatusUnauthorized, "You must be logged in to generate a defense document")
	}

	var req cases.IntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return generateFailure(c, fiber.StatusBadRequest, "All required fields must be provided")
	}
	if !req.Validate() {
		return generateFailure(c, fiber.StatusBadRequest, "All required fields must be provided")
	}

	record := req.ToCase(identity.ID)
	caseID, err := h.Cases.Insert(c.UserContext(), record)
	if err != nil {
		log.Printf("defense: insert case failed: %v", err)
		return generateFailure(c, fiber.StatusInternalServerError, "Failed to generate defense document")
	}
	record.ID = caseID

	pdfBytes, err := Render(RenderData{
		Case:        record,
		Arguments:   GenerateArguments(record),
		CaseID:      caseID,
		GeneratedAt: h.Now(),
	})
	if err != nil {
		log.Printf("defense: render failed for case %s: %v", caseID, err)
		return generateFailure(c, fiber.StatusInternalServerError, "Failed to generate defense document")
	}

	if err := h.Cases.MarkPDFGenerated(c.UserContext(), caseID); err != nil {
		log.Printf("defense: mark generated failed for case %s: %v", caseID, err)
		return generateFailure(c, fiber.StatusInternalServerError, "Failed to generate defense document")
	}

	audit.Record(c, h.AuditDB, audit.ActionGenerateDoc, "case", &identity.ID, &caseID)

	return c.JSON(generateResponse{
		Success: true,
		PDFURL:  "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(pdfBytes),
		CaseID:  caseID,
	})
}

// ListCases returns the caller's intake history, newest first.
func (h *Handler) ListCases(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	items, err := h.Cases.ListByUser(c.UserContext(), identity.ID)
	if err != nil {
		log.Printf("defense: list cases failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list cases")
	}
	return c.JSON(items)
}

// Document re-renders a stored case and streams it as a PDF. Rendering is
// deterministic, so serving on demand beats storing the artifact; the stored
// pdf_generated_at timestamp keeps repeat downloads byte-identical.
func (h *Handler) Document(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	caseID := strings.TrimSpace(c.Params("id"))
	if _, err := uuid.Parse(caseID); err != nil {
		return fiber.ErrNotFound
	}

	record, err := h.Cases.GetByID(c.UserContext(), caseID, identity.ID)
	if err != nil {
		return fiber.ErrNotFound
	}

	generatedAt := h.Now()
	if record.PDFGeneratedAt != nil {
		generatedAt = *record.PDFGeneratedAt
	}

	pdfBytes, err := Render(RenderData{
		Case:        record,
		Arguments:   GenerateArguments(record),
		CaseID:      record.ID,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		log.Printf("defense: render failed for case %s: %v", record.ID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate defense document")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="defense-document-`+shortID(record.ID)+`.pdf"`)
	return c.Send(pdfBytes)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
