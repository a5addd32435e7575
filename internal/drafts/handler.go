package drafts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wetheparent-backend/internal/attachments"
	"wetheparent-backend/internal/shared/server/middleware"
	"wetheparent-backend/internal/shared/server/respond"
)

// maxAudioSize bounds transcription uploads.
const maxAudioSize = 50 << 20

// Handler wires HTTP handlers to the drafting service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches drafting routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/drafts/strategy", h.strategy)
	rg.POST("/drafts/objection", h.objection)
	rg.POST("/documents/:id/predicate-analysis", h.predicateAnalysis)
	rg.POST("/transcriptions", h.transcribe)
}

type strategyRequest struct {
	Issue string `json:"issue"`
	Facts string `json:"facts"`
}

func (h *Handler) strategy(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req strategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	draft, err := h.Svc.Strategy(c.Request.Context(), userID, req.Issue, req.Facts)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond.OK(c, gin.H{"draft": draft})
}

type objectionRequest struct {
	Objection string `json:"objection"`
	Context   string `json:"context"`
}

func (h *Handler) objection(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req objectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	draft, err := h.Svc.Objection(c.Request.Context(), userID, req.Objection, req.Context)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond.OK(c, gin.H{"draft": draft})
}

func (h *Handler) predicateAnalysis(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	analysis, err := h.Svc.PredicateAnalysis(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond.OK(c, gin.H{"analysis": analysis})
}

func (h *Handler) transcribe(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAudioSize)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no file selected")
		return
	}
	defer file.Close()

	text, err := h.Svc.Transcribe(c.Request.Context(), userID, header.Filename, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond.OK(c, gin.H{"text": text})
}

func respondServiceError(c *gin.Context, err error) {
	var provider *ProviderError
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, attachments.ErrUnauthenticated):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, attachments.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error())
	case errors.As(err, &provider):
		respond.Error(c, http.StatusBadGateway, "provider_error", provider.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
