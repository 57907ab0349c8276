package api

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontgen_server/internal/session"
	"frontgen_server/internal/types"
)

// stubModel stands in for the model endpoint.
type stubModel struct {
	text string
	err  error
}

func (s *stubModel) Generate(ctx context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func newTestRouter(t *testing.T, model *stubModel) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewStore(time.Minute)
	t.Cleanup(store.Close)

	router := gin.New()
	RegisterRoutes(router, NewAPIHandler(model, store))
	return router
}

func doJSON(router *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const pricingCompletion = "### FILE: index.html\n```html\n<h1>Pricing</h1>\n```\n\n" +
	"### FILE: style.css\n```css\n.tier { border: 1px solid; }\n```\n\n" +
	"### FILE: script.js\n```javascript\nconsole.log('tiers');\n```\n"

func TestGenerateDownloadEndToEnd(t *testing.T) {
	router := newTestRouter(t, &stubModel{text: pricingCompletion})

	w := doJSON(router, http.MethodPost, "/project/generate",
		`{"framework": "html_css_js", "requirements": "a pricing page with three tiers"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ProjectID)
	assert.Equal(t, "html_css_js", resp.Framework)
	require.Len(t, resp.Files, 3)
	assert.Nil(t, resp.Diagnostics)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "generate must establish a session cookie")

	// Download from the same session.
	dw := doJSON(router, http.MethodGet, "/project/download", "", cookies)
	require.Equal(t, http.StatusOK, dw.Code)
	assert.Equal(t, "application/zip", dw.Header().Get("Content-Type"))
	assert.Contains(t, dw.Header().Get("Content-Disposition"), "html_css_js_code_base.zip")

	data := dw.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 4, "three generated files plus README at archive root")

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"index.html", "style.css", "script.js", "README.md"}, names)
}

func TestGeneratePreviewFlow(t *testing.T) {
	router := newTestRouter(t, &stubModel{text: pricingCompletion})

	w := doJSON(router, http.MethodPost, "/project/generate",
		`{"framework": "html_css_js", "requirements": "a pricing page"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	pw := doJSON(router, http.MethodGet, "/project/preview", "", w.Result().Cookies())
	require.Equal(t, http.StatusOK, pw.Code)
	assert.Contains(t, pw.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, pw.Body.String(), "<h1>Pricing</h1>")
	assert.Contains(t, pw.Body.String(), ".tier { border: 1px solid; }")
}

func TestPreviewRejectedForReact(t *testing.T) {
	reactCompletion := "### FILE: src/App.js\n```javascript\nexport default function App() {}\n```\n"
	router := newTestRouter(t, &stubModel{text: reactCompletion})

	w := doJSON(router, http.MethodPost, "/project/generate",
		`{"framework": "react", "requirements": "a dashboard"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	pw := doJSON(router, http.MethodGet, "/project/preview", "", w.Result().Cookies())
	assert.Equal(t, http.StatusBadRequest, pw.Code)
}

func TestGenerateReportsDuplicateDiagnostics(t *testing.T) {
	dup := "### FILE: src/App.js\n```javascript\nfirst\n```\n" +
		"### FILE: src/App.js\n```javascript\nsecond\n```\n"
	router := newTestRouter(t, &stubModel{text: dup})

	w := doJSON(router, http.MethodPost, "/project/generate",
		`{"framework": "react", "requirements": "an app"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "second", resp.Files[0].Content)
	require.NotNil(t, resp.Diagnostics)
	assert.Equal(t, []string{"src/App.js"}, resp.Diagnostics.DuplicatePaths)
}

func TestGenerateInvalidBody(t *testing.T) {
	router := newTestRouter(t, &stubModel{text: pricingCompletion})

	w := doJSON(router, http.MethodPost, "/project/generate", `{"framework": "react"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateUnknownFramework(t *testing.T) {
	router := newTestRouter(t, &stubModel{text: pricingCompletion})

	w := doJSON(router, http.MethodPost, "/project/generate",
		`{"framework": "vue", "requirements": "a shop"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported framework")
}

func TestGenerateUpstreamFailure(t *testing.T) {
	router := newTestRouter(t, &stubModel{err: &types.UpstreamError{Cause: errors.New("rate limit exceeded")}})

	w := doJSON(router, http.MethodPost, "/project/generate",
		`{"framework": "react", "requirements": "a shop"}`, nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["retryable"])
}

func TestGenerateUnparsableCompletion(t *testing.T) {
	router := newTestRouter(t, &stubModel{text: "Sorry, I can't help with that."})

	w := doJSON(router, http.MethodPost, "/project/generate",
		`{"framework": "react", "requirements": "a shop"}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Sorry, I can't help with that.", body["rawCompletion"])
}

func TestDownloadWithoutGeneration(t *testing.T) {
	router := newTestRouter(t, &stubModel{text: pricingCompletion})

	w := doJSON(router, http.MethodGet, "/project/download", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	pw := doJSON(router, http.MethodGet, "/project/preview", "", nil)
	assert.Equal(t, http.StatusNotFound, pw.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &stubModel{})

	w := doJSON(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
