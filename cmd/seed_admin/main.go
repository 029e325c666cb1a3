package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Owhab/nexacms-sub002/internal/app"
	"github.com/Owhab/nexacms-sub002/internal/data/db"
	"github.com/Owhab/nexacms-sub002/internal/data/repos"
	types "github.com/Owhab/nexacms-sub002/internal/domain"
	"github.com/Owhab/nexacms-sub002/internal/platform/dbctx"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
	"github.com/Owhab/nexacms-sub002/internal/services"
)

func main() {
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email address")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password (min 8 characters)")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "", "last name")
	reset := flag.Bool("reset-password", false, "overwrite the password when the user already exists")
	flag.Parse()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if strings.TrimSpace(*email) == "" || *password == "" {
		log.Error("email and password are required (flags or ADMIN_EMAIL / ADMIN_PASSWORD)")
		os.Exit(2)
	}

	if err := run(context.Background(), log, *email, *password, *firstName, *lastName, *reset); err != nil {
		log.Error("seed admin failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, email, password, firstName, lastName string, reset bool) error {
	cfg, err := app.LoadConfig(log)
	if err != nil {
		return err
	}
	dbService, err := db.NewService(log, cfg.DB)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer dbService.Close()
	if err := dbService.AutoMigrateAll(); err != nil {
		return fmt.Errorf("database automigrate: %w", err)
	}

	userRepo := repos.NewUserRepo(dbService.DB(), log)
	authService := services.NewAuthService(log, userRepo, cfg.JWTSecretKey, cfg.AccessTokenTTL)

	dbc := dbctx.Context{Ctx: ctx}
	existing, err := userRepo.GetByEmail(dbc, email)
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}
	if existing == nil {
		user, err := authService.RegisterUser(ctx, services.RegisterInput{
			Email:     email,
			Password:  password,
			FirstName: firstName,
			LastName:  lastName,
			Role:      types.RoleAdmin,
		})
		if err != nil {
			return err
		}
		log.Info("Admin user created", "user_id", user.ID, "email", user.Email)
		return nil
	}

	if existing.Role != types.RoleAdmin {
		if err := userRepo.UpdateRole(dbc, existing.ID, types.RoleAdmin); err != nil {
			return fmt.Errorf("promote user: %w", err)
		}
		log.Info("Existing user promoted to admin", "user_id", existing.ID)
	}
	if reset {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if err := userRepo.UpdatePassword(dbc, existing.ID, string(hash)); err != nil {
			return fmt.Errorf("reset password: %w", err)
		}
		log.Info("Admin password reset", "user_id", existing.ID)
	}
	return nil
}
