package main

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/bidfair/backend/internal/config"
	"github.com/bidfair/backend/internal/db"
	"github.com/bidfair/backend/internal/handler"
	"github.com/bidfair/backend/internal/service"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	postgres, err := db.NewPostgres(ctx, cfg.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to postgres")
	}
	defer postgres.Close()

	if err := postgres.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ensure schema")
	}

	authService, err := service.NewAuthService(postgres, postgres, cfg.Auth)
	if err != nil {
		logrus.WithError(err).Fatal("invalid auth configuration")
	}

	if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("failed to ensure admin user")
	}

	if purged, err := authService.PurgeExpiredTokens(ctx); err != nil {
		logrus.WithError(err).Warn("failed to purge expired tokens")
	} else if purged > 0 {
		logrus.WithField("count", purged).Info("purged expired tokens")
	}

	userService := service.NewUserService(postgres)
	collectionService := service.NewCollectionService(postgres, postgres)
	bidService := service.NewBidService(postgres, postgres)

	router := handler.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewCollectionHandler(collectionService),
		handler.NewBidHandler(bidService),
		authService,
		splitOrigins(cfg.CORS.AllowedOrigins),
	)

	addr := ":" + cfg.Server.Port
	logrus.WithField("addr", addr).Info("starting server")
	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func splitOrigins(origins string) []string {
	var out []string
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
