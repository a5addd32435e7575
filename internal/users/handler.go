package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wetheparent-backend/internal/shared/server/middleware"
	"wetheparent-backend/internal/shared/server/respond"
)

// Handler serves the authenticated-principal endpoint.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

// me echoes the signed-in user. Falls back to the token claims when the
// account row has not been persisted, which happens with memory repos after
// a restart.
func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.OK(c, gin.H{"user": User{
				ID:         userID,
				Email:      middleware.UserEmailFromContext(c),
				FullName:   middleware.UserNameFromContext(c),
				PictureURL: middleware.UserPictureFromContext(c),
			}})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "database_error", err.Error())
		return
	}

	respond.OK(c, gin.H{"user": user})
}
