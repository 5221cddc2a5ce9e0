// Package bootstrap assembles shared dependencies and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "coverletter-backend/internal/auth"
	"coverletter-backend/internal/generations"
	"coverletter-backend/internal/letters"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/llm/openai"
	"coverletter-backend/internal/resumes"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/server"
	"coverletter-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	GenerationsRepo generations.Repo
	LetterService   *letters.Service
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var genRepo generations.Repo
	if sqlDB != nil {
		genRepo = &generations.PGRepo{DB: sqlDB}
	} else {
		genRepo = generations.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.Unconfigured{})
	if strings.TrimSpace(cfg.OpenAIAPIKey) != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return nil, err
		}
		llmClient = client
	} else {
		log.Printf("bootstrap: OPENAI_API_KEY empty; cover letter generation disabled")
	}

	letterSvc := &letters.Service{
		LLM:         llmClient,
		Generations: genRepo,
	}

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		GenerationsRepo: genRepo,
		LetterService:   letterSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		ResumeHandler:      resumes.NewHandler(&resumes.Service{}),
		LetterHandler:      letters.NewHandler(letterSvc),
		GenerationsHandler: generations.NewHandler(genRepo),
		GoogleAuth: googleauth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
			cfg.AdminEmails,
		),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
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
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
