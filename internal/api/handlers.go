package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"frontgen_server/internal/ai"
	"frontgen_server/internal/ai/prompts"
	"frontgen_server/internal/framework"
	"frontgen_server/internal/packager"
	"frontgen_server/internal/parser"
	"frontgen_server/internal/preview"
	"frontgen_server/internal/session"
	"frontgen_server/internal/types"
	"frontgen_server/internal/utils"
)

const sessionCookie = "fg_session"

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	aiGenerator ai.Client
	sessions    *session.Store
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(aiGen ai.Client, sessions *session.Store) *APIHandler {
	return &APIHandler{
		aiGenerator: aiGen,
		sessions:    sessions,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	Framework    string `json:"framework" binding:"required"`
	Requirements string `json:"requirements" binding:"required"`
	StyleNotes   string `json:"styleNotes"`
}

type GenerateResponse struct {
	ProjectID   string             `json:"projectId"`
	Framework   string             `json:"framework"`
	Files       []types.FileEntry  `json:"files"`
	Diagnostics *types.Diagnostics `json:"diagnostics,omitempty"`
}

// --- API Handlers ---

// POST /project/generate
func (h *APIHandler) GenerateSite(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	fw, err := framework.Parse(req.Framework)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genReq := &types.GenerationRequest{
		Framework:    fw,
		Requirements: req.Requirements,
		StyleNotes:   req.StyleNotes,
	}
	prompt, err := prompts.Build(genReq)
	if err != nil {
		h.writeError(c, err)
		return
	}

	sess := h.sessionFor(c)
	seq := sess.Begin()

	log.Printf("Session %s: generating %s project (seq %d)", sess.ID, fw, seq)

	rawText, err := h.aiGenerator.Generate(c.Request.Context(), prompt)
	if err != nil {
		h.writeError(c, err)
		return
	}

	bundle, diags, err := parser.Parse(&types.ModelCompletion{RawText: rawText, Framework: fw})
	if err != nil {
		h.writeError(c, err)
		return
	}

	projectID := uuid.New().String()
	if !sess.Commit(seq, projectID, bundle, diags, rawText) {
		c.JSON(http.StatusConflict, gin.H{"error": "Superseded by a newer generation request"})
		return
	}

	log.Printf("Session %s: generated project %s with %d files", sess.ID, projectID, len(bundle.Files))
	if !diags.IsClean() {
		log.Printf("Session %s: parse diagnostics for project %s: %d duplicates, %d empty files",
			sess.ID, projectID, len(diags.DuplicatePaths), len(diags.EmptyFiles))
	}

	resp := GenerateResponse{
		ProjectID: projectID,
		Framework: string(fw),
		Files:     bundle.Files,
	}
	if !diags.IsClean() {
		resp.Diagnostics = diags
	}
	c.JSON(http.StatusCreated, resp)
}

// GET /project/preview
func (h *APIHandler) PreviewProject(c *gin.Context) {
	sess := h.sessionFor(c)
	_, bundle, _, ok := sess.Bundle()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No generated project in this session"})
		return
	}

	doc, err := preview.Assemble(bundle)
	if err != nil {
		if errors.Is(err, preview.ErrNotPreviewable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// GET /project/download
func (h *APIHandler) DownloadProject(c *gin.Context) {
	sess := h.sessionFor(c)
	projectID, bundle, _, ok := sess.Bundle()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No generated project in this session"})
		return
	}

	data, err := packager.Package(bundle)
	if err != nil {
		h.writeError(c, err)
		return
	}

	log.Printf("Session %s: packaged project %s (%d bytes)", sess.ID, projectID, len(data))
	c.Header("Content-Disposition", `attachment; filename="`+bundle.Framework.ArchiveName()+`"`)
	c.Data(http.StatusOK, "application/zip", data)
}

// sessionFor resolves the caller's session from the cookie, creating a
// fresh session (and cookie) on first interaction.
func (h *APIHandler) sessionFor(c *gin.Context) *session.Session {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = uuid.New().String()
		c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	}
	return h.sessions.GetOrCreate(id)
}

// writeError maps the error taxonomy onto distinct status codes and
// user-visible messages. Nothing here is fatal to the process; every
// failure leaves the session ready for the next request.
func (h *APIHandler) writeError(c *gin.Context, err error) {
	var invalidErr *types.InvalidRequestError
	var upstreamErr *types.UpstreamError
	var parseErr *types.ParseError
	var packagingErr *types.PackagingError

	switch {
	case errors.As(err, &invalidErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Error()})
	case errors.As(err, &upstreamErr):
		log.Printf("Upstream model failure: %v", upstreamErr.Cause)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     upstreamErr.Error(),
			"retryable": utils.IsRetryable(upstreamErr.Cause),
		})
	case errors.As(err, &parseErr):
		log.Printf("Parse failure: %s", parseErr.Reason)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         parseErr.Error(),
			"rawCompletion": parseErr.RawText,
		})
	case errors.As(err, &packagingErr):
		log.Printf("Packaging failure: %v", packagingErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": packagingErr.Error()})
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
