package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie the browser replays on every request.
const CookieName = "auth-token"

// SetAuthCookie attaches the signed token as an HTTP-only, site-wide,
// lax-same-site cookie. Secure is enabled outside local development so the
// cookie never crosses plain HTTP in production.
func SetAuthCookie(c *fiber.Ctx, token string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL / time.Second),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearAuthCookie deletes the session cookie. Clearing an absent cookie is a
// no-op, which keeps logout idempotent.
func ClearAuthCookie(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
