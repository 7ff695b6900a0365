// Package app wires configuration, storage, services and transports into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql"
	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/vektah/gqlparser/v2/ast"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb"
	assetrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/asset"
	choicerepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/choice"
	progressrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/progress"
	scenariorepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/scenario"
	scenerepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/scene"
	tokenrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/token"
	userrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/user"
	"github.com/nmoreaux/storyforge-backend/internal/adapter/provider/googletts"
	"github.com/nmoreaux/storyforge-backend/internal/adapter/provider/huggingface"
	"github.com/nmoreaux/storyforge-backend/internal/adapter/storage/local"
	authpkg "github.com/nmoreaux/storyforge-backend/internal/auth"
	"github.com/nmoreaux/storyforge-backend/internal/config"
	assetsvc "github.com/nmoreaux/storyforge-backend/internal/service/asset"
	authsvc "github.com/nmoreaux/storyforge-backend/internal/service/auth"
	progresssvc "github.com/nmoreaux/storyforge-backend/internal/service/progress"
	storysvc "github.com/nmoreaux/storyforge-backend/internal/service/story"
	usersvc "github.com/nmoreaux/storyforge-backend/internal/service/user"
	gqlpkg "github.com/nmoreaux/storyforge-backend/internal/transport/graphql"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/dataloader"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/generated"
	"github.com/nmoreaux/storyforge-backend/internal/transport/graphql/resolver"
	"github.com/nmoreaux/storyforge-backend/internal/transport/middleware"
	"github.com/nmoreaux/storyforge-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// MongoDB, assembles the services and transports, starts the HTTP server,
// and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	db, err := mongodb.Connect(connectCtx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(disconnectCtx); err != nil {
			logger.Error("mongodb disconnect", slog.String("error", err.Error()))
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	// Repositories.
	users := userrepo.New(db)
	tokens := tokenrepo.New(db)
	scenarios := scenariorepo.New(db)
	scenes := scenerepo.New(db)
	choices := choicerepo.New(db)
	progresses := progressrepo.New(db)
	assets := assetrepo.New(db)

	// Providers and file storage.
	files, err := local.New(cfg.Media)
	if err != nil {
		return err
	}
	hf := huggingface.NewProvider(cfg.AI, logger)
	tts := googletts.NewProvider(cfg.AI.TTSBaseURL, cfg.AI.TTSLanguage, logger)

	// Services.
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, jwtMgr, cfg.Auth)
	userService := usersvc.NewService(logger, users, tokens, cfg.Auth.BcryptCost)
	assetService := assetsvc.NewService(logger, assets, files, hf, tts, cfg.AI)
	storyService := storysvc.NewService(logger, scenarios, scenes, choices, progresses, assetService)
	progressService := progresssvc.NewService(logger, progresses, scenarios, scenes)

	// GraphQL server.
	res := resolver.NewResolver(logger, authService, userService, storyService, progressService, assetService)
	gqlSrv := newGraphQLServer(generated.NewExecutableSchema(generated.Config{Resolvers: res}), cfg.GraphQL)
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))

	dlRepos := &dataloader.Repos{
		User:     users,
		Scenario: scenarios,
		Scene:    scenes,
		Choice:   choices,
		Asset:    assets,
	}

	protected := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		rl := middleware.NewRateLimiter(5 * time.Minute)
		defer rl.Stop()
		protected = append(protected, rl.Limit(cfg.Server.RateLimitPerMinute))
	}
	protected = append(protected,
		middleware.Auth(authService),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)
	chain := middleware.Chain(protected...)

	graphqlHandler := chain(gqlSrv)
	uploadHandler := chain(http.HandlerFunc(
		rest.NewUploadHandler(assetService, storyService, cfg.Server.MaxUploadBytes, logger).Upload,
	))

	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(mongoPinger{db.Client()}, BuildVersion())
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)
	mux.Handle("POST /upload", uploadHandler)
	mux.Handle("GET "+cfg.Media.BaseURL+"/",
		http.StripPrefix(cfg.Media.BaseURL+"/", http.FileServer(http.Dir(files.Dir()))))

	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /", playground.Handler("StoryForge", "/query"))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newGraphQLServer builds the gqlgen server with explicit transports so that
// introspection and query complexity follow configuration.
func newGraphQLServer(schema graphql.ExecutableSchema, cfg config.GraphQLConfig) *gqlhandler.Server {
	srv := gqlhandler.New(schema)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})
	srv.AddTransport(transport.MultipartForm{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	srv.Use(extension.AutomaticPersistedQuery{Cache: lru.New[string](100)})

	if cfg.IntrospectionEnabled {
		srv.Use(extension.Introspection{})
	}
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}

	return srv
}

// mongoPinger adapts the MongoDB client to the health handler.
type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
