// Package bootstrap builds the application graph: config in, wired router
// out. Tests reuse Build to get a full server against memory repos and a
// temp-dir object store.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"wetheparent-backend/internal/attachments"
	googleauth "wetheparent-backend/internal/auth"
	"wetheparent-backend/internal/cases"
	"wetheparent-backend/internal/deadlines"
	"wetheparent-backend/internal/drafts"
	"wetheparent-backend/internal/llm"
	openai "wetheparent-backend/internal/llm/openai"
	"wetheparent-backend/internal/shared/config"
	"wetheparent-backend/internal/shared/server"
	"wetheparent-backend/internal/shared/storage/db"
	"wetheparent-backend/internal/shared/storage/object"
	localstore "wetheparent-backend/internal/shared/storage/object/local"
	miniostore "wetheparent-backend/internal/shared/storage/object/minio"
	s3store "wetheparent-backend/internal/shared/storage/object/s3"
	"wetheparent-backend/internal/users"
)

// App holds the shared dependencies for one server process.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	CasesRepo       cases.Repo
	AttachmentsRepo attachments.Repo
	DeadlinesRepo   deadlines.Repo
	UsersRepo       users.Repo

	CasesService       *cases.Service
	AttachmentsService *attachments.Service
	DeadlinesService   *deadlines.Service
	DraftsService      *drafts.Service
	UsersService       *users.Service

	CasesHandler       *cases.Handler
	AttachmentsHandler *attachments.Handler
	DeadlinesHandler   *deadlines.Handler
	DraftsHandler      *drafts.Handler
	UsersHandler       *users.Handler
	GoogleAuth         *googleauth.GoogleService
}

// Build prepares the dependency graph and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		CasesHandler:       app.CasesHandler,
		AttachmentsHandler: app.AttachmentsHandler,
		DeadlinesHandler:   app.DeadlinesHandler,
		DraftsHandler:      app.DraftsHandler,
		UsersHandler:       app.UsersHandler,
		GoogleAuth:         app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errors.New("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	case "minio":
		if strings.TrimSpace(cfg.MinioEndpoint) == "" || strings.TrimSpace(cfg.MinioBucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=minio requires MINIO_ENDPOINT and MINIO_BUCKET")
		}
		return miniostore.New(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var (
		caseRepo cases.Repo
		attRepo  attachments.Repo
		dlRepo   deadlines.Repo
		userRepo users.Repo
	)
	if app.DB != nil {
		caseRepo = &cases.PGRepo{DB: app.DB}
		attRepo = &attachments.PGRepo{DB: app.DB}
		dlRepo = &deadlines.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		caseRepo = cases.NewMemoryRepo()
		attRepo = attachments.NewMemoryRepo()
		dlRepo = deadlines.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	caseSvc := &cases.Service{Repo: caseRepo}
	attSvc := &attachments.Service{Store: app.Store, Repo: attRepo}
	dlSvc := &deadlines.Service{Repo: dlRepo, Cases: caseOwnershipAdapter{svc: caseSvc}}

	llmClient := llm.Client(llm.PlaceholderClient{})
	transcriber := llm.Transcriber(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" && os.Getenv("OPENAI_API_KEY") != "" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
		transcriber = openaiClient
	}
	draftSvc := drafts.NewService(llmClient, transcriber, attSvc)

	userSvc := users.NewService(userRepo)
	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.CasesRepo = caseRepo
	app.AttachmentsRepo = attRepo
	app.DeadlinesRepo = dlRepo
	app.UsersRepo = userRepo
	app.CasesService = caseSvc
	app.AttachmentsService = attSvc
	app.DeadlinesService = dlSvc
	app.DraftsService = draftSvc
	app.UsersService = userSvc
	app.CasesHandler = cases.NewHandler(caseSvc)
	app.AttachmentsHandler = attachments.NewHandler(attSvc)
	app.DeadlinesHandler = deadlines.NewHandler(dlSvc)
	app.DraftsHandler = drafts.NewHandler(draftSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc

	return nil
}

// caseOwnershipAdapter lets the deadlines service verify case ownership
// through the cases service without importing it directly.
type caseOwnershipAdapter struct {
	svc *cases.Service
}

func (a caseOwnershipAdapter) OwnsCase(ctx context.Context, userID, caseID string) error {
	_, err := a.svc.Get(ctx, userID, caseID)
	return err
}
