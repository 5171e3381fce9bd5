package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/jobboard/modules/api"
	"github.com/dmitrymomot/jobboard/pkg/config"
	"github.com/dmitrymomot/jobboard/pkg/httpserver"
	"github.com/dmitrymomot/jobboard/pkg/jwt"
	"github.com/dmitrymomot/jobboard/pkg/logger"
	"github.com/dmitrymomot/jobboard/pkg/pg"
	"github.com/dmitrymomot/jobboard/pkg/requestid"
	"github.com/dmitrymomot/jobboard/svc/company"
	"github.com/dmitrymomot/jobboard/svc/job"
	"github.com/dmitrymomot/jobboard/svc/user"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("jobboard stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format := logger.FormatJSON
	if cfg.App.Env == logger.EnvDevelopment {
		format = logger.FormatText
	}
	log := logger.New(
		logger.WithLevelName(cfg.Log.Level),
		logger.WithFormat(format),
		logger.WithEnvironment(cfg.App.Env, cfg.App.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), jwt.LoggerExtractor()),
	)
	slog.SetDefault(log)

	pool, err := pg.Connect(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	tokens, err := jwt.NewFromString(cfg.Auth.SecretKey, jwt.WithTTL(cfg.Auth.TokenTTL))
	if err != nil {
		return err
	}

	validator, err := api.NewSchemaValidator()
	if err != nil {
		return err
	}

	jobs := job.NewStorage(pool)
	companies := company.NewStorage(pool)
	users := user.NewStorage(pool, user.WithBcryptCost(cfg.Auth.BcryptCost))

	router := api.Router(api.RouterOptions{
		Middlewares: []func(http.Handler) http.Handler{
			requestid.Middleware,
			jwt.Authenticate(tokens, log),
		},
		Health:    httpserver.HealthCheckHandler(log, pg.Healthcheck(pool)),
		Auth:      api.NewAuth(users, tokens, validator, log),
		Jobs:      api.NewJobs(jobs, validator, log),
		Companies: api.NewCompanies(companies, jobs, validator, log),
		Users:     api.NewUsers(users, tokens, validator, log),
	})

	server := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := server.Run(ctx, router); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
