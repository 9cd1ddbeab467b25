package audit

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Actions recorded against the audit_logs table.
const (
	ActionRegister    = "user.register"
	ActionLogin       = "user.login"
	ActionLogout      = "user.logout"
	ActionGenerateDoc = "case.generate_document"
)

type Entry struct {
	UserID     *string
	Action     string
	EntityType string
	EntityID   *string
	IP         *string
	UserAgent  *string
	Metadata   []byte
}

// Write records an audit entry. Auditing is best-effort: failures are
// returned so callers can log and move on, never fail the request.
func Write(ctx context.Context, db *pgxpool.Pool, e Entry) error {
	if db == nil {
		return nil
	}

	var metadata interface{}
	if len(e.Metadata) > 0 {
		metadata = json.RawMessage(e.Metadata)
	}

	_, err := db.Exec(ctx, `
INSERT INTO audit_logs (user_id, action, entity_type, entity_id, ip, user_agent, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, e.UserID, e.Action, e.EntityType, e.EntityID, e.IP, e.UserAgent, metadata)

	return err
}

// Record captures request context (IP, user agent) and writes the entry,
// logging instead of propagating any storage error.
func Record(c *fiber.Ctx, db *pgxpool.Pool, action, entityType string, userID, entityID *string) {
	ip := c.IP()
	ua := c.Get(fiber.HeaderUserAgent)

	e := Entry{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		IP:         &ip,
	}
	if ua != "" {
		e.UserAgent = &ua
	}

	if err := Write(c.UserContext(), db, e); err != nil {
		log.Printf("audit: failed to record %s: %v", action, err)
	}
}
