// Command cleanup-tokens deletes expired refresh tokens. It is intended to
// be invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb"
	tokenrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/token"
	userrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/user"
	"github.com/nmoreaux/storyforge-backend/internal/app"
	authpkg "github.com/nmoreaux/storyforge-backend/internal/auth"
	"github.com/nmoreaux/storyforge-backend/internal/config"
	authsvc "github.com/nmoreaux/storyforge-backend/internal/service/auth"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("connect to mongodb", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background()) //nolint:errcheck

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := authsvc.NewService(logger, userrepo.New(db), tokenrepo.New(db), jwtMgr, cfg.Auth)

	count, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Deleted %d expired refresh tokens.\n", count)
}
