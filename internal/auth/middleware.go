package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// RequireAuth guards a route. The session cookie is checked first; an
// Authorization bearer header is accepted as a fallback for non-browser
// callers. Verification failures are collapsed into a single 401 so callers
// cannot distinguish a bad signature from an expired session.
func RequireAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := ParseToken(tokenFromRequest(c), secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
		}
		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// IdentityFromCtx returns the verified identity stored by RequireAuth.
func IdentityFromCtx(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey).(Identity)
	if !ok || strings.TrimSpace(id.ID) == "" {
		return Identity{}, false
	}
	return id, true
}

func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(CookieName); cookie != "" {
		return cookie
	}
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
