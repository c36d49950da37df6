package main

import (
	"net/http"

	_ "onboard/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"onboard/internal/auth"
	"onboard/internal/cache"
	"onboard/internal/config"
	"onboard/internal/db"
	"onboard/internal/handler"
	"onboard/internal/logger"
	"onboard/internal/model"
	"onboard/internal/repository"
	"onboard/internal/router"
	"onboard/internal/service"
)

// @title Customer Onboarding API
// @version 1.0
// @description Multi-tenant onboarding API: brokers manage their own customers, admins manage brokers.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
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

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	customerRepo := repository.NewCustomerRepository(gormDB)

	// Session token codec
	tokens := auth.NewTokenService(cfg.JWTSecret)

	// Services
	authService := service.NewAuthService(userRepo, tokens, cfg.BcryptCost)
	userService := service.NewUserService(userRepo)
	customerService := service.NewCustomerService(customerRepo, userRepo)
	adminService := service.NewAdminService(userRepo, cfg.BcryptCost)
	dashboardService := service.NewDashboardService(userRepo, customerRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	customerHandler := handler.NewCustomerHandler(customerService)
	adminHandler := handler.NewAdminHandler(adminService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	e := echo.New()
	router.Register(
		e,
		cfg,
		log,
		cacheClient,
		tokens,
		authHandler,
		userHandler,
		customerHandler,
		adminHandler,
		dashboardHandler,
	)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
