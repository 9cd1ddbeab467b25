package http

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/hemanthreddy-komma/Legal-IT/internal/audit"
	"github.com/hemanthreddy-komma/Legal-IT/internal/auth"
	"github.com/hemanthreddy-komma/Legal-IT/internal/domain"
	"github.com/hemanthreddy-komma/Legal-IT/internal/users"
)

// UserStore is what the auth endpoints need from persistence. The pgx
// repository satisfies it; tests substitute a fake.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AuthHandler struct {
	Users        UserStore
	Secret       []byte
	SecureCookie bool
	AuditDB      *pgxpool.Pool
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResult struct {
	Success bool              `json:"success"`
	User    domain.PublicUser `json:"user"`
}

func authFailure(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return authFailure(c, fiber.StatusBadRequest, "All fields are required")
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	if body.Name == "" || body.Email == "" || body.Password == "" {
		return authFailure(c, fiber.StatusBadRequest, "All fields are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register: bcrypt failed: %v", err)
		return authFailure(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	user, err := h.Users.Create(c.UserContext(), body.Name, body.Email, string(hashed))
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return authFailure(c, fiber.StatusConflict, "Email already in use")
		}
		log.Printf("register: create user failed: %v", err)
		return authFailure(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	token, err := auth.GenerateToken(user, h.Secret, auth.TokenTTL)
	if err != nil {
		log.Printf("register: token signing failed: %v", err)
		return authFailure(c, fiber.StatusInternalServerError, "Failed to register user")
	}
	auth.SetAuthCookie(c, token, h.SecureCookie)

	audit.Record(c, h.AuditDB, audit.ActionRegister, "user", &user.ID, nil)

	return c.Status(fiber.StatusCreated).JSON(authResult{Success: true, User: user.Public()})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return authFailure(c, fiber.StatusBadRequest, "All fields are required")
	}

	body.Email = strings.TrimSpace(body.Email)
	if body.Email == "" || body.Password == "" {
		return authFailure(c, fiber.StatusBadRequest, "All fields are required")
	}

	// A missing user and a wrong password produce the same message so the
	// response never reveals which half failed.
	user, err := h.Users.GetByEmail(c.UserContext(), body.Email)
	if err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			log.Printf("login: lookup failed: %v", err)
			return authFailure(c, fiber.StatusInternalServerError, "Failed to login")
		}
		return authFailure(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		return authFailure(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := auth.GenerateToken(user, h.Secret, auth.TokenTTL)
	if err != nil {
		log.Printf("login: token signing failed: %v", err)
		return authFailure(c, fiber.StatusInternalServerError, "Failed to login")
	}
	auth.SetAuthCookie(c, token, h.SecureCookie)

	audit.Record(c, h.AuditDB, audit.ActionLogin, "user", &user.ID, nil)

	return c.JSON(authResult{Success: true, User: user.Public()})
}

// Logout clears the session cookie. Logging out without a session is still a
// success.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if identity, err := auth.ParseToken(c.Cookies(auth.CookieName), h.Secret); err == nil {
		audit.Record(c, h.AuditDB, audit.ActionLogout, "user", &identity.ID, nil)
	}
	auth.ClearAuthCookie(c, h.SecureCookie)
	return c.JSON(fiber.Map{"success": true})
}

// Status reports whether the request carries a valid session. An invalid or
// absent token is an anonymous visitor, never an error.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	identity, err := auth.ParseToken(c.Cookies(auth.CookieName), h.Secret)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false, "user": nil})
	}
	return c.JSON(fiber.Map{
		"authenticated": true,
		"user": domain.PublicUser{
			ID:    identity.ID,
			Name:  identity.Name,
			Email: identity.Email,
		},
	})
}
