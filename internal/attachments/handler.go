package attachments

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"wetheparent-backend/internal/shared/server/middleware"
	"wetheparent-backend/internal/shared/server/respond"
)

const maxUploadSize = 25 << 20 // 25MB

// Handler wires HTTP handlers to the attachment service. The same pipeline
// serves both upload surfaces; only the kind differs.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document and evidence routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.ingest(KindDocument))
	rg.GET("/documents", h.list(KindDocument))
	rg.GET("/documents/:id/download", h.download)
	rg.PATCH("/documents/:id", h.update)
	rg.DELETE("/documents/:id", h.delete)

	rg.POST("/evidence", h.ingest(KindEvidence))
	rg.GET("/evidence", h.list(KindEvidence))
}

func (h *Handler) ingest(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

		caseID := c.PostForm("case_id")
		if caseID == "" {
			caseID = c.Query("case_id")
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", ErrNoFile.Error())
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file")
			return
		}
		defer file.Close()

		a, err := h.Svc.Ingest(c.Request.Context(), userID, caseID, kind, fileHeader.Filename, fileHeader.Size, file)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnauthenticated):
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			case errors.Is(err, ErrNoFile), errors.Is(err, ErrCaseRequired), errors.Is(err, ErrInvalidCaseID):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
			default:
				respond.Error(c, http.StatusInternalServerError, "storage_error", err.Error())
			}
			return
		}

		c.Set("caseId", caseID)
		respond.Created(c, gin.H{string(kind): toResponse(a)})
	}
}

func (h *Handler) list(kind Kind) gin.HandlerFunc {
	envelope := "documents"
	if kind == KindEvidence {
		envelope = "evidence"
	}
	return func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		caseID := c.Query("case_id")

		result, err := h.Svc.List(c.Request.Context(), userID, caseID, kind)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnauthenticated):
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			case errors.Is(err, ErrCaseRequired):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
			default:
				respond.Error(c, http.StatusInternalServerError, "database_error", err.Error())
			}
			return
		}

		c.Set("caseId", caseID)
		respond.OK(c, gin.H{envelope: toResponses(result)})
	}
}

type updateRequest struct {
	FileName *string `json:"file_name"`
	CaseID   *string `json:"case_id"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	a, err := h.Svc.Update(c.Request.Context(), userID, id, UpdateParams{
		FileName: req.FileName,
		CaseID:   req.CaseID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		case errors.Is(err, ErrEmptyPatch), errors.Is(err, ErrInvalidCaseID):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "database_error", err.Error())
		}
		return
	}

	respond.OK(c, toResponse(a))
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		default:
			respond.Error(c, http.StatusInternalServerError, "database_error", err.Error())
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	a, reader, err := h.Svc.OpenBlob(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthenticated):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", err.Error())
		}
		return
	}
	defer reader.Close()

	contentType := a.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", `attachment; filename="`+a.FileName+`"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
