// Command cleanup empties every application collection, referencing
// documents first so no run is left pointing at a deleted scenario.
// Intended for resetting a development or staging database before
// reseeding; pair with cmd/seeder.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb"
	"github.com/nmoreaux/storyforge-backend/internal/app"
	"github.com/nmoreaux/storyforge-backend/internal/config"
)

func main() {
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !*yes && !confirm() {
		fmt.Println("Aborted.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("connect to mongodb", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background()) //nolint:errcheck

	total, err := mongodb.EmptyCollections(ctx, db)
	if err != nil {
		logger.Error("empty collections", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("database emptied", slog.Int64("deleted", total))
	fmt.Printf("Deleted %d documents.\n", total)
}

func confirm() bool {
	fmt.Print("This deletes ALL data in the database. Continue? (y/N): ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
