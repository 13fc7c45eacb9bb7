package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prassign/internal/config"
	"prassign/internal/notify"
	"prassign/internal/registry"
	"prassign/internal/roster"
	"prassign/internal/service"
	"prassign/internal/storage/file"
	"prassign/internal/storage/pgx"
	transport "prassign/internal/transport/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(ctx)
	stop()
	if err != nil {
		slog.Error("app stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var (
		teams teamSource
		store registry.Store
	)
	if cfg.DatabaseURL != "" {
		st, err := openPostgres(ctx, cfg.DatabaseURL, logger, pgx.Connect, pgx.Migrate)
		if err != nil {
			return err
		}
		defer st.Close()

		teams = st
		store = st
	} else {
		store = file.NewMemberStore(cfg.RegistryPath)
	}

	teamCfg, err := loadTeamConfig(ctx, teams, cfg.TeamConfigPath, logger)
	if err != nil {
		return fmt.Errorf("load team config: %w", err)
	}

	team, err := roster.New(teamCfg)
	if err != nil {
		return fmt.Errorf("invalid team config: %w", err)
	}
	logger.Info("team config loaded",
		"groups", len(team.Groups()),
		"members", team.PoolSize(),
		"channel", team.ChannelID())

	members := registry.New(store, logger)
	if err := members.Load(ctx); err != nil {
		logger.Warn("starting with an empty member registry", "error", err)
	}

	var publisher service.Publisher = notify.NewLogPublisher(logger)
	if cfg.SlackToken != "" {
		publisher = notify.NewSlack(cfg.SlackToken, team.ChannelID(), logger)
	}

	var src rand.Source
	if cfg.RandomSeed != nil {
		src = rand.NewPCG(*cfg.RandomSeed, *cfg.RandomSeed)
	}

	svc := service.NewService(team, service.NewEngine(src), members, publisher, logger)

	router := transport.NewHandler(
		svc, // ReviewsService
		svc, // TeamService
		svc, // MembersService
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("ListenAndServe failed: %w", err)
	case <-ctx.Done():
	}
	logger.Info("signal received, shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	} else {
		logger.Info("HTTP server gracefully stopped")
	}
	return nil
}

type (
	connectFunc func(ctx context.Context, connString string, logger *slog.Logger) (*pgx.Storage, error)
	migrateFunc func(ctx context.Context, st *pgx.Storage) error
)

// openPostgres waits for the database through connect's backoff and only then
// applies migrations.
func openPostgres(ctx context.Context, connString string, logger *slog.Logger, connect connectFunc, migrate migrateFunc) (*pgx.Storage, error) {
	st, err := connect(ctx, connString, logger)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err := migrate(ctx, st); err != nil {
		st.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return st, nil
}

type teamSource interface {
	LoadTeamConfig(ctx context.Context) (roster.Config, error)
}

// loadTeamConfig prefers the database and falls back to the JSON document
// when no source is given or the database holds no task groups.
func loadTeamConfig(ctx context.Context, teams teamSource, path string, logger *slog.Logger) (roster.Config, error) {
	if teams != nil {
		cfg, err := teams.LoadTeamConfig(ctx)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, pgx.ErrNoTeamGroups) {
			return roster.Config{}, err
		}
		logger.Warn("no task groups in database, reading team config file", "path", path)
	}

	return file.LoadTeamConfig(path)
}
