// Package bootstrap assembles the application: configuration, logging,
// storage, services, controllers and routing.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vishnuv55/SPC-Backend/internal/app/controllers"
	"github.com/vishnuv55/SPC-Backend/internal/app/repositories"
	"github.com/vishnuv55/SPC-Backend/internal/app/routes"
	"github.com/vishnuv55/SPC-Backend/internal/app/services"
	"github.com/vishnuv55/SPC-Backend/internal/config"
	"github.com/vishnuv55/SPC-Backend/internal/db"
	"github.com/vishnuv55/SPC-Backend/internal/middleware"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/email"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/logger"
)

// App holds the assembled application.
type App struct {
	Config *config.Config
	Router *gin.Engine
	Mongo  *db.Mongo
}

// NewApp loads configuration and wires every layer together.
func NewApp(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	mongo, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := mongo.EnsureIndexes(ctx); err != nil {
		_ = mongo.Close(ctx)
		return nil, err
	}

	repos := repositories.NewRepositories(mongo.Database)
	jwt := auth.NewJWTService(cfg.JWT.Secret)
	mailer := email.NewMailer(email.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}, log.Logger)

	svcs := services.NewServices(repos, cfg, jwt, mailer)
	ctls := controllers.NewControllers(svcs, jwt, cfg.IsProduction())
	gate := middleware.NewAuthMiddleware(jwt, repos.Students, repos.Execoms, cfg.Admin.ID, cfg.IsProduction())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))
	routes.Register(router, ctls, gate)

	return &App{Config: cfg, Router: router, Mongo: mongo}, nil
}

// The session cookie travels cross-origin, so the browser client's origin must
// be allowed explicitly and credentials enabled; a wildcard would be refused.
func corsConfig(cfg *config.Config) cors.Config {
	origin := cfg.CORS.ClientOrigin
	if origin == "" {
		origin = "http://localhost:3000"
	}

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{origin}
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return corsCfg
}

// Close releases the application's external resources.
func (a *App) Close(ctx context.Context) {
	if err := a.Mongo.Close(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to close mongodb connection")
	}
}
