package cases

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wetheparent-backend/internal/shared/server/middleware"
	"wetheparent-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the case service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches case routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cases", h.list)
	rg.POST("/cases", h.create)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	result, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error())
		}
		return
	}

	if result == nil {
		result = []Case{}
	}
	respond.OK(c, gin.H{"cases": result})
}

type createCaseRequest struct {
	Name       string `json:"name"`
	CaseNumber string `json:"case_number"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), userID, req.Name, req.CaseNumber)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", err.Error())
		}
		return
	}

	respond.Created(c, gin.H{"case": created})
}
