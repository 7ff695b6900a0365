// Command server runs the StoryForge GraphQL backend.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// a .env file in the working directory is loaded if present.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nmoreaux/storyforge-backend/internal/app"
)

func main() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
