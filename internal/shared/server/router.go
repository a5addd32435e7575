package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "wetheparent-backend/internal/auth"
	"wetheparent-backend/internal/cases"
	"wetheparent-backend/internal/deadlines"
	"wetheparent-backend/internal/drafts"
	"wetheparent-backend/internal/shared/config"
	"wetheparent-backend/internal/shared/metrics"
	"wetheparent-backend/internal/shared/server/middleware"
	"wetheparent-backend/internal/shared/server/respond"
	"wetheparent-backend/internal/users"

	"wetheparent-backend/internal/attachments"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config             config.Config
	CasesHandler       *cases.Handler
	AttachmentsHandler *attachments.Handler
	DeadlinesHandler   *deadlines.Handler
	DraftsHandler      *drafts.Handler
	UsersHandler       *users.Handler
	GoogleAuth         *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.CasesHandler != nil {
		deps.CasesHandler.RegisterRoutes(api)
	}
	if deps.AttachmentsHandler != nil {
		deps.AttachmentsHandler.RegisterRoutes(api)
	}
	if deps.DeadlinesHandler != nil {
		deps.DeadlinesHandler.RegisterRoutes(api)
	}
	if deps.DraftsHandler != nil {
		deps.DraftsHandler.RegisterRoutes(api)
	}

	// Local object store blobs are served straight off disk; S3 and MinIO
	// return provider URLs instead.
	if deps.Config.ObjectStoreType == "local" || deps.Config.ObjectStoreType == "" {
		r.StaticFS("/files", http.Dir(deps.Config.LocalStoreDir))
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
