package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/hemanthreddy-komma/Legal-IT/internal/domain"
)

func newProtectedApp(t *testing.T, secret []byte) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", RequireAuth(secret), func(c *fiber.Ctx) error {
		identity, ok := IdentityFromCtx(c)
		require.True(t, ok)
		return c.JSON(identity)
	})
	return app
}

func TestRequireAuth_Cookie(t *testing.T) {
	t.Parallel()

	secret := []byte("mw-secret")
	app := newProtectedApp(t, secret)

	tok, err := GenerateToken(&domain.User{ID: "u1", Email: "a@x.com", Name: "A"}, secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth_BearerFallback(t *testing.T) {
	t.Parallel()

	secret := []byte("mw-secret")
	app := newProtectedApp(t, secret)

	tok, err := GenerateToken(&domain.User{ID: "u2", Email: "b@x.com", Name: "B"}, secret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuth_Rejections(t *testing.T) {
	t.Parallel()

	secret := []byte("mw-secret")
	app := newProtectedApp(t, secret)

	expired, err := GenerateToken(&domain.User{ID: "u3", Email: "c@x.com", Name: "C"}, secret, -time.Minute)
	require.NoError(t, err)
	foreign, err := GenerateToken(&domain.User{ID: "u4", Email: "d@x.com", Name: "D"}, []byte("other"), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no token", func(r *http.Request) {}},
		{"expired token", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: expired})
		}},
		{"wrong secret", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: foreign})
		}},
		{"garbage cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tc.setup(req)

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
