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

	"resumeai-backend/internal/ats"
	"resumeai-backend/internal/exports"
	"resumeai-backend/internal/imports"
	"resumeai-backend/internal/payments"
	"resumeai-backend/internal/resumes"
	"resumeai-backend/internal/shared/config"
	"resumeai-backend/internal/shared/server"
	"resumeai-backend/internal/shared/storage/db"
	"resumeai-backend/internal/shared/storage/object"
	localstore "resumeai-backend/internal/shared/storage/object/local"
	s3store "resumeai-backend/internal/shared/storage/object/s3"
	"resumeai-backend/internal/suggestions"
	"resumeai-backend/internal/templates"
	"resumeai-backend/internal/users"
	atsrules "resumeai-backend/resume/ats"
	"resumeai-backend/resume/export"
	"resumeai-backend/resume/suggest"
	"resumeai-backend/resume/suggest/openai"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	UsersService     *users.Service
	ResumesService   *resumes.Service
	TemplatesService *templates.Service
	PaymentsService  *payments.Service
	ExportsService   *exports.Service
}

// Build prepares dependencies and assembles the router. Without a
// database the repositories fall back to in-memory implementations in
// dev-like environments.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
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

	var (
		usersRepo     users.Repo
		resumesRepo   resumes.Repo
		templatesRepo templates.Repo
		paymentsRepo  payments.Repo
		exportsRepo   exports.Repo
	)
	if sqlDB != nil {
		usersRepo = &users.PGRepo{DB: sqlDB}
		resumesRepo = &resumes.PGRepo{DB: sqlDB}
		templatesRepo = &templates.PGRepo{DB: sqlDB}
		paymentsRepo = &payments.PGRepo{DB: sqlDB}
		exportsRepo = &exports.PGRepo{DB: sqlDB}
	} else {
		usersRepo = users.NewMemoryRepo()
		resumesRepo = resumes.NewMemoryRepo()
		templatesRepo = templates.NewMemoryRepo()
		paymentsRepo = payments.NewMemoryRepo()
		exportsRepo = exports.NewMemoryRepo()
	}

	resumesSvc := resumes.NewService(resumesRepo, userExistsFunc(usersRepo))
	usersSvc := users.NewService(usersRepo, summaryLister{resumesSvc})
	templatesSvc := templates.NewService(templatesRepo)
	paymentsSvc := payments.NewService(paymentsRepo, payments.NewMockGateway(cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL))

	engine := buildEngine(cfg)
	exportsSvc := exports.NewService(resumesSvc, engine, store, exportsRepo)

	provider, err := buildProvider(cfg)
	if err != nil {
		return nil, err
	}

	atsCfg := atsrules.DefaultConfig()
	atsCfg.ElasticMax = cfg.ATSElasticMax

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Store:            store,
		UsersService:     usersSvc,
		ResumesService:   resumesSvc,
		TemplatesService: templatesSvc,
		PaymentsService:  paymentsSvc,
		ExportsService:   exportsSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		UsersHandler:       users.NewHandler(usersSvc),
		ResumesHandler:     resumes.NewHandler(resumesSvc),
		TemplatesHandler:   templates.NewHandler(templatesSvc),
		PaymentsHandler:    payments.NewHandler(paymentsSvc),
		SuggestionsHandler: suggestions.NewHandler(provider),
		ATSHandler:         ats.NewHandler(resumesSvc, atsCfg),
		ExportsHandler:     exports.NewHandler(exportsSvc),
		ImportsHandler:     imports.NewHandler(),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildEngine(cfg config.Config) export.Engine {
	if cfg.ExportEngine == "chrome" {
		return export.NewChromeEngine()
	}
	return export.NewNativeEngine()
}

func buildProvider(cfg config.Config) (suggest.Provider, error) {
	if cfg.AIProvider == "openai" {
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.AIModel)
		if err != nil {
			return nil, fmt.Errorf("build openai provider: %w", err)
		}
		return client, nil
	}
	return suggest.NewMockProvider(), nil
}

func userExistsFunc(repo users.Repo) resumes.UserExistsFunc {
	return func(ctx context.Context, userID string) (bool, error) {
		if _, err := repo.GetByID(ctx, userID); err != nil {
			if errors.Is(err, users.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
}

// summaryLister adapts the resumes service to the users package's view
// of resume summaries.
type summaryLister struct {
	svc *resumes.Service
}

func (l summaryLister) SummariesForUser(ctx context.Context, userID string, limit int) ([]users.ResumeSummary, error) {
	summaries, err := l.svc.RecentSummaries(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]users.ResumeSummary, len(summaries))
	for i, s := range summaries {
		out[i] = users.ResumeSummary{ID: s.ID, Title: s.Title, UpdatedAt: s.UpdatedAt}
	}
	return out, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
