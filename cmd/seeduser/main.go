package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ovenly/bakeshop-backend/internal/data/db"
	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
	"github.com/ovenly/bakeshop-backend/internal/services"
	"github.com/ovenly/bakeshop-backend/internal/utils"
)

// seeduser provisions a staff login. Users are never created through the
// API, only out-of-band with this tool.
func main() {
	name := flag.String("name", "", "login name for the user")
	password := flag.String("password", "", "password for the user")
	flag.Parse()

	if *name == "" || *password == "" {
		fmt.Println("usage: seeduser -name <name> -password <password>")
		os.Exit(2)
	}

	_ = godotenv.Load()

	log, err := logger.New("development")
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dsn := utils.GetEnv("DATABASE_URL", "bakeshop.db", log)
	dbService, err := db.NewService(dsn, log)
	if err != nil {
		log.Fatal("Failed to open database", "error", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}

	hash, err := services.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password", "error", err)
	}

	ctx := context.Background()
	userRepo := repos.NewUserRepo(dbService.DB(), log)

	existing, err := userRepo.GetByName(ctx, nil, *name)
	if err != nil {
		log.Fatal("Failed to look up user", "error", err)
	}
	if existing != nil {
		existing.HashedPassword = hash
		if err := userRepo.Update(ctx, nil, existing); err != nil {
			log.Fatal("Failed to update user", "error", err)
		}
		log.Info("Updated password", "user", *name, "id", existing.ID)
		return
	}

	user := &domain.User{Name: *name, HashedPassword: hash}
	if err := userRepo.Create(ctx, nil, user); err != nil {
		log.Fatal("Failed to create user", "error", err)
	}
	log.Info("Created user", "user", *name, "id", user.ID)
}
