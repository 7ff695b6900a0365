// Command seeder populates the database with demo content: an admin
// account, a player account, and a small branching scenario. It is meant
// for local development and demos, not production.
//
// Flags:
//
//	--admin-email     admin account email (default admin@storyforge.local)
//	--admin-password  admin account password (default admin123)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb"
	choicerepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/choice"
	scenariorepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/scenario"
	scenerepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/scene"
	userrepo "github.com/nmoreaux/storyforge-backend/internal/adapter/mongodb/user"
	"github.com/nmoreaux/storyforge-backend/internal/app"
	"github.com/nmoreaux/storyforge-backend/internal/config"
	"github.com/nmoreaux/storyforge-backend/internal/domain"
)

func main() {
	adminEmail := flag.String("admin-email", "admin@storyforge.local", "admin account email")
	adminPassword := flag.String("admin-password", "admin123", "admin account password")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("connect to mongodb", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background()) //nolint:errcheck

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logger.Error("ensure indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := repos{
		users:     userrepo.New(db),
		scenarios: scenariorepo.New(db),
		scenes:    scenerepo.New(db),
		choices:   choicerepo.New(db),
	}

	if err := seed(ctx, r, *adminEmail, *adminPassword, cfg.Auth.BcryptCost); err != nil {
		logger.Error("seed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println("Seeded demo admin, player and scenario.")
}

type repos struct {
	users     *userrepo.Repo
	scenarios *scenariorepo.Repo
	scenes    *scenerepo.Repo
	choices   *choicerepo.Repo
}

func seed(ctx context.Context, r repos, adminEmail, adminPassword string, bcryptCost int) error {
	now := time.Now()

	admin, err := seedUser(ctx, r, adminEmail, adminPassword, domain.UserRoleAdmin, bcryptCost, now)
	if err != nil {
		return err
	}
	if _, err := seedUser(ctx, r, "player@storyforge.local", "player123", domain.UserRolePlayer, bcryptCost, now); err != nil {
		return err
	}

	desc := "A short demo adventure: find a way out of the abandoned lighthouse."
	scenario, err := r.scenarios.Create(ctx, &domain.Scenario{
		Title:       "The Abandoned Lighthouse",
		Description: &desc,
		AuthorID:    admin.ID,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("create scenario: %w", err)
	}

	entrance, err := r.scenes.Create(ctx, &domain.Scene{
		ScenarioID:   scenario.ID,
		Title:        "The Entrance",
		Text:         "The iron door groans open. A spiral staircase rises into darkness; a trapdoor sinks into the floor.",
		Order:        1,
		IsStartScene: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}

	lanternRoom, err := r.scenes.Create(ctx, &domain.Scene{
		ScenarioID: scenario.ID,
		Title:      "The Lantern Room",
		Text:       "You reach the top. The great lens is shattered, but beyond the broken glass a rope bridge leads to the cliff. You are free.",
		Order:      2,
		IsEndScene: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}

	cellar, err := r.scenes.Create(ctx, &domain.Scene{
		ScenarioID: scenario.ID,
		Title:      "The Cellar",
		Text:       "The trapdoor slams shut above you. In the dark you feel a cold iron key on a hook.",
		Order:      3,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}

	steps := []domain.Choice{
		{FromSceneID: entrance.ID, ToSceneID: lanternRoom.ID, Text: "Climb the staircase", Order: 1, CreatedAt: now},
		{FromSceneID: entrance.ID, ToSceneID: cellar.ID, Text: "Open the trapdoor", Order: 2, CreatedAt: now},
		{FromSceneID: cellar.ID, ToSceneID: entrance.ID, Text: "Unlock the trapdoor and climb back", Order: 1,
			Condition: map[string]any{"hasKey": true}, CreatedAt: now},
	}
	for i := range steps {
		if _, err := r.choices.Create(ctx, &steps[i]); err != nil {
			return fmt.Errorf("create choice: %w", err)
		}
	}

	return nil
}

func seedUser(ctx context.Context, r repos, email, password string, role domain.UserRole, bcryptCost int, now time.Time) (*domain.User, error) {
	if existing, err := r.users.GetByEmail(ctx, email); err == nil {
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := r.users.Create(ctx, &domain.User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", email, err)
	}
	return u, nil
}
