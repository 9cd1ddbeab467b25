package analyzer

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("document", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake document body"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/analyze", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func newAnalyzerApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/documents/analyze", AnalyzeHandler())
	return app
}

func TestAnalyzeHandler_AcceptsPDF(t *testing.T) {
	t.Parallel()

	app := newAnalyzerApp()
	resp, err := app.Test(uploadRequest(t, "agreement.pdf"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAnalyzeHandler_RejectsOtherTypes(t *testing.T) {
	t.Parallel()

	app := newAnalyzerApp()
	resp, err := app.Test(uploadRequest(t, "photo.png"))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeHandler_MissingFile(t *testing.T) {
	t.Parallel()

	app := newAnalyzerApp()
	req := httptest.NewRequest(http.MethodPost, "/api/documents/analyze", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyze_StableShape(t *testing.T) {
	t.Parallel()

	res := Analyze("anything.pdf")
	require.Equal(t, "Service Agreement", res.Summary.Title)
	require.Len(t, res.Summary.Parties, 2)
	require.Len(t, res.KeyTerms, 5)
	require.Len(t, res.Risks, 5)
}
