package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/hemanthreddy-komma/Legal-IT/internal/auth"
	"github.com/hemanthreddy-komma/Legal-IT/internal/domain"
	"github.com/hemanthreddy-komma/Legal-IT/internal/users"
)

// --- fakes ---

type fakeUserStore struct {
	byEmail   map[string]*domain.User
	createErr error
	nextID    int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserStore) Create(_ context.Context, name, email, passwordHash string) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	key := users.NormalizeEmail(email)
	if _, exists := f.byEmail[key]; exists {
		return nil, users.ErrEmailTaken
	}
	f.nextID++
	u := &domain.User{
		ID:           fmt.Sprintf("user-%d", f.nextID),
		Email:        key,
		Name:         name,
		PasswordHash: passwordHash,
	}
	f.byEmail[key] = u
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[users.NormalizeEmail(email)]
	if !ok {
		return nil, users.ErrNotFound
	}
	return u, nil
}

// --- helpers ---

var testSecret = []byte("test-secret")

func newAuthApp(store UserStore) *fiber.App {
	app := fiber.New()
	h := &AuthHandler{Users: store, Secret: testSecret}
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/logout", h.Logout)
	app.Get("/api/auth/status", h.Status)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("auth-token cookie not set")
	return nil
}

// --- tests ---

func TestRegister_SetsSessionCookie(t *testing.T) {
	t.Parallel()

	app := newAuthApp(newFakeUserStore())

	resp := postJSON(t, app, "/api/auth/register",
		`{"name":"Jane Doe","email":"Jane@Example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])

	user := body["user"].(map[string]any)
	require.Equal(t, "Jane Doe", user["name"])
	require.Equal(t, "jane@example.com", user["email"])
	require.NotEmpty(t, user["id"])

	cookie := sessionCookie(t, resp)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, "/", cookie.Path)

	// The issued token verifies against the same secret and carries the same
	// identity the response reported.
	identity, err := auth.ParseToken(cookie.Value, testSecret)
	require.NoError(t, err)
	require.Equal(t, user["id"], identity.ID)
	require.Equal(t, "jane@example.com", identity.Email)
	require.Equal(t, "Jane Doe", identity.Name)
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	app := newAuthApp(newFakeUserStore())

	for _, body := range []string{
		`{}`,
		`{"name":"Jane"}`,
		`{"name":"Jane","email":"jane@example.com"}`,
		`{"email":"jane@example.com","password":"pw"}`,
	} {
		resp := postJSON(t, app, "/api/auth/register", body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		decoded := decodeBody(t, resp)
		require.Equal(t, false, decoded["success"])
		require.Equal(t, "All fields are required", decoded["error"])
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	t.Parallel()

	app := newAuthApp(newFakeUserStore())

	resp := postJSON(t, app, "/api/auth/register",
		`{"name":"Jane","email":"jane@example.com","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/register",
		`{"name":"Janet","email":"JANE@example.com","password":"pw2"}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "Email already in use", decodeBody(t, resp)["error"])
}

func TestLogin_UniformFailureMessage(t *testing.T) {
	t.Parallel()

	app := newAuthApp(newFakeUserStore())

	resp := postJSON(t, app, "/api/auth/register",
		`{"name":"Jane","email":"jane@example.com","password":"correct-pw"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Unknown email and wrong password must be indistinguishable.
	for _, body := range []string{
		`{"email":"nobody@example.com","password":"correct-pw"}`,
		`{"email":"jane@example.com","password":"wrong-pw"}`,
	} {
		resp := postJSON(t, app, "/api/auth/login", body)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Invalid email or password", decodeBody(t, resp)["error"])
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	app := newAuthApp(newFakeUserStore())

	resp := postJSON(t, app, "/api/auth/register",
		`{"name":"Jane","email":"jane@example.com","password":"correct-pw"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login",
		`{"email":"jane@example.com","password":"correct-pw"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, true, body["success"])
	sessionCookie(t, resp)
}

func TestLogout_Idempotent(t *testing.T) {
	t.Parallel()

	app := newAuthApp(newFakeUserStore())

	for i := 0; i < 2; i++ {
		resp := postJSON(t, app, "/api/auth/logout", ``)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, true, decodeBody(t, resp)["success"])
	}
}

func TestStatus_RoundTrip(t *testing.T) {
	t.Parallel()

	app := newAuthApp(newFakeUserStore())

	resp := postJSON(t, app, "/api/auth/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cookie := sessionCookie(t, resp)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.AddCookie(cookie)
	statusResp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, statusResp.StatusCode)

	body := decodeBody(t, statusResp)
	require.Equal(t, true, body["authenticated"])
	user := body["user"].(map[string]any)
	require.Equal(t, "Jane Doe", user["name"])
	require.Equal(t, "jane@example.com", user["email"])
}

func TestStatus_Anonymous(t *testing.T) {
	t.Parallel()

	app := newAuthApp(newFakeUserStore())

	for _, setup := range []func(r *http.Request){
		func(r *http.Request) {},
		func(r *http.Request) { r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "garbage"}) },
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
		setup(req)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		require.Equal(t, false, body["authenticated"])
		require.Nil(t, body["user"])
	}
}
