// Command seed creates the initial admin and a demo broker so a fresh
// deployment has something to log in with.
package main

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"onboard/internal/config"
	"onboard/internal/db"
	"onboard/internal/logger"
	"onboard/internal/model"
	"onboard/internal/repository"
)

type seedUser struct {
	name     string
	email    string
	gstin    string
	password string
	role     model.Role
}

var seedUsers = []seedUser{
	{name: "Admin User", email: "admin@example.com", gstin: "07ADMIN1234A1Z5", password: "admin123", role: model.RoleAdmin},
	{name: "Acme Export", email: "broker@acme.com", gstin: "09ACMEX1234B1Z3", password: "broker123", role: model.RoleBroker},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogLevel, cfg.Development())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Customer{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created := 0
	for _, su := range seedUsers {
		n, err := seedOne(ctx, users, su, cfg.BcryptCost)
		if err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("seed user")
		}
		created += n
	}

	log.Info().Int("created", created).Int("skipped", len(seedUsers)-created).Msg("seed completed")
}

func seedOne(ctx context.Context, users repository.UserRepository, su seedUser, cost int) (int, error) {
	_, err := users.FindByEmail(ctx, su.email)
	if err == nil {
		// already present, leave it alone
		return 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("check existing: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(su.password), cost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         su.name,
		Email:        su.email,
		GSTIN:        su.gstin,
		PasswordHash: string(hashed),
		Role:         su.role,
	}
	if err := users.Create(ctx, user); err != nil {
		return 0, fmt.Errorf("create: %w", err)
	}
	return 1, nil
}
