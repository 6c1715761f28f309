package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"skillmatrix-backend/internal/documents"
	"skillmatrix-backend/internal/events"
	"skillmatrix-backend/internal/matcher"
	"skillmatrix-backend/internal/matches"
	"skillmatrix-backend/internal/shared/config"
	"skillmatrix-backend/internal/shared/server"
	"skillmatrix-backend/internal/shared/storage/db"
	"skillmatrix-backend/internal/shared/storage/object"
	localstore "skillmatrix-backend/internal/shared/storage/object/local"
	s3store "skillmatrix-backend/internal/shared/storage/object/s3"
	"skillmatrix-backend/internal/submission"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Broker *events.Broker
	AMQP   *events.AMQPPublisher

	DocumentsRepo documents.Repo
	MatchesRepo   matches.Repo

	DocumentsService  *documents.Service
	SubmissionService *submission.Service

	DocumentsHandler  *documents.Handler
	MatchesHandler    *matches.Handler
	SubmissionHandler *submission.Handler
	EventsHandler     *events.Handler
}

// Build prepares shared dependencies and wires the router.
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
		Broker: events.NewBroker(),
	}

	if cfg.RabbitMQURL != "" {
		amqpPub, err := events.NewAMQPPublisher(cfg.RabbitMQURL)
		if err != nil {
			if !isDevLike(cfg.Env) {
				return nil, err
			}
			log.Printf("bootstrap: amqp connect failed; live updates stay in-process: %v", err)
		} else {
			app.AMQP = amqpPub
		}
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		SubmissionHandler: app.SubmissionHandler,
		DocumentsHandler:  app.DocumentsHandler,
		MatchesHandler:    app.MatchesHandler,
		EventsHandler:     app.EventsHandler,
	})

	return app, nil
}

// Close releases connections held by the app.
func (a *App) Close() {
	if a.AMQP != nil {
		if err := a.AMQP.Close(); err != nil {
			log.Printf("bootstrap: amqp close: %v", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			log.Printf("bootstrap: db close: %v", err)
		}
	}
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
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

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var docRepo documents.Repo
	var matchRepo matches.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		matchRepo = &matches.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		matchRepo = matches.NewMemoryRepo(documentLookup(docRepo))
	}

	gateway, err := matcher.NewClient(app.Config.MatchAPIURL, app.Config.MatchTimeout)
	if err != nil {
		return err
	}

	var publisher events.Publisher = app.Broker
	if app.AMQP != nil {
		publisher = events.MultiPublisher{app.Broker, app.AMQP}
	}

	docSvc := &documents.Service{Repo: docRepo, Mirror: app.Store}
	submissionSvc := &submission.Service{
		Documents: docSvc,
		Matches:   matchRepo,
		Gateway:   gateway,
		Publisher: publisher,
	}

	app.DocumentsRepo = docRepo
	app.MatchesRepo = matchRepo
	app.DocumentsService = docSvc
	app.SubmissionService = submissionSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.MatchesHandler = matches.NewHandler(matchRepo)
	app.SubmissionHandler = submission.NewHandler(submissionSvc)
	app.EventsHandler = events.NewHandler(app.Broker)

	return nil
}

// documentLookup joins document metadata into match listings when the
// in-memory repositories are active. Kind is unknown at lookup time, so
// both are tried.
func documentLookup(repo documents.Repo) matches.DocumentLookup {
	return func(ctx context.Context, id string) (matches.DocumentRef, error) {
		for _, kind := range []documents.Kind{documents.KindResume, documents.KindJobDescription} {
			doc, err := repo.GetByID(ctx, kind, id)
			if err == nil {
				return matches.DocumentRef{ID: doc.ID, Title: doc.Title, Filename: doc.Filename}, nil
			}
			if !errors.Is(err, documents.ErrNotFound) {
				return matches.DocumentRef{}, err
			}
		}
		return matches.DocumentRef{}, documents.ErrNotFound
	}
}
