package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"onboard/internal/auth"
	"onboard/internal/cache"
	"onboard/internal/config"
	"onboard/internal/handler"
	"onboard/internal/middleware"
	"onboard/internal/model"
	"onboard/internal/ratelimit"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	cacheClient *cache.Client,
	tokens *auth.TokenService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	customerHandler *handler.CustomerHandler,
	adminHandler *handler.AdminHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("onboard"))

	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Development())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	globalLimiter := ratelimit.New(cacheClient, "global", cfg.RateLimit.GlobalLimit, cfg.RateLimit.GlobalWindow)
	authLimiter := ratelimit.New(cacheClient, "auth", cfg.RateLimit.AuthLimit, cfg.RateLimit.AuthWindow)

	api := e.Group("/api", globalLimiter.Middleware())

	// Public routes; auth gets a stricter limiter on top of the global one.
	authGroup := api.Group("/auth", authLimiter.Middleware())
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)

	// Secured routes. The token is accepted from either the Authorization
	// header or the session cookie; verification is delegated to the codec.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + handler.SessionCookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.Verify(token)
		},
		ErrorHandler: jwtErrorHandler,
	}))

	secured.GET("/me", userHandler.Me)
	secured.GET("/users/:id", userHandler.Get)

	secured.GET("/customers", customerHandler.List)
	secured.POST("/customers", customerHandler.Create)
	secured.PUT("/customers/:id", customerHandler.Update)
	secured.DELETE("/customers/:id", customerHandler.Delete)

	secured.GET("/dashboard", dashboardHandler.Broker)

	// Admin routes
	admin := secured.Group("/admin", middleware.RBAC(model.RoleAdmin))
	admin.GET("/customers", customerHandler.ListAll)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/brokers", adminHandler.CreateBroker)
	admin.GET("/brokers", adminHandler.ListBrokers)
	admin.PUT("/brokers/:id", adminHandler.UpdateBroker)
	admin.DELETE("/brokers/:id", adminHandler.DeleteBroker)
	admin.GET("/dashboard", dashboardHandler.Admin)
}

// jwtErrorHandler maps every token failure to 401. The response does not
// distinguish a bad signature from a malformed token.
func jwtErrorHandler(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return echo.NewHTTPError(http.StatusUnauthorized, "Token expired")
	case errors.Is(err, auth.ErrTokenSignature),
		errors.Is(err, auth.ErrTokenMalformed),
		errors.Is(err, auth.ErrTokenInvalid):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	default:
		return echo.NewHTTPError(http.StatusUnauthorized, "Authorization token is required")
	}
}
