package deadlines

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wetheparent-backend/internal/cases"
	"wetheparent-backend/internal/shared/server/middleware"
	"wetheparent-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the deadline service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches timeline routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cases/:id/deadlines", h.list)
	rg.POST("/cases/:id/deadlines", h.create)
	rg.PATCH("/deadlines/:id", h.update)
	rg.DELETE("/deadlines/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	caseID := c.Param("id")

	result, err := h.Svc.List(c.Request.Context(), userID, caseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if result == nil {
		result = []Deadline{}
	}
	c.Set("caseId", caseID)
	respond.OK(c, gin.H{"deadlines": result})
}

type createDeadlineRequest struct {
	Title string     `json:"title"`
	Note  string     `json:"note"`
	DueAt *time.Time `json:"due_at"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	caseID := c.Param("id")

	var req createDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}
	dueAt := time.Time{}
	if req.DueAt != nil {
		dueAt = *req.DueAt
	}

	created, err := h.Svc.Create(c.Request.Context(), userID, caseID, req.Title, req.Note, dueAt)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Set("caseId", caseID)
	respond.Created(c, gin.H{"deadline": created})
}

type updateDeadlineRequest struct {
	Title     *string    `json:"title"`
	Note      *string    `json:"note"`
	DueAt     *time.Time `json:"due_at"`
	Completed *bool      `json:"completed"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	var req updateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), userID, id, UpdateParams{
		Title:     req.Title,
		Note:      req.Note,
		DueAt:     req.DueAt,
		Completed: req.Completed,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond.OK(c, updated)
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmptyPatch):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, cases.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", err.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, "database_error", err.Error())
	}
}
