package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orgconnect/frontend/login"
	"orgconnect/frontend/workspace"
	"orgconnect/infrastructure/config"
	httpserver "orgconnect/infrastructure/http"
	"orgconnect/infrastructure/logging"
	"orgconnect/infrastructure/metrics"
	"orgconnect/infrastructure/password"
	"orgconnect/infrastructure/scheduler"
	"orgconnect/infrastructure/seed"
	"orgconnect/infrastructure/session"
	"orgconnect/infrastructure/sqlite"
)

const sessionPurgeInterval = time.Minute

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		log.Fatalf("init logging: %v", err)
	}
	slog.SetDefault(logger)

	db, err := sqlite.OpenDB(cfg.DB.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := sqlite.ApplyEmbeddedMigrations(ctx, db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	hasher := password.Default()
	for _, user := range seed.DemoAccounts() {
		if err := login.UpsertAccount(ctx, db, hasher, user, cfg.Demo.Password); err != nil {
			log.Fatalf("seed demo account %s: %v", user.Email, err)
		}
	}

	sched := scheduler.New()
	sched.OnTick(func(name string) {
		metrics.SchedulerTicks.WithLabelValues(name).Inc()
	})

	sessions := session.NewStore(db, cfg.Session.TTL)
	workspaces := workspace.NewRegistry(sched, cfg.Simulation, time.Now)
	if _, err := sched.Add(workspaces.PurgeJob(sessions.PurgeExpired, sessionPurgeInterval), time.Now()); err != nil {
		log.Fatalf("schedule session purge: %v", err)
	}

	httpserver.ShutdownTimeout = cfg.Server.ShutdownTimeout
	server := httpserver.NewServer(cfg.Server.Addr, db, sessions, workspaces, hasher, metrics.NewRegistry())
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	slog.Info("orgconnect started", slog.String("addr", cfg.Server.Addr), slog.String("db", cfg.DB.Path))

	schedDone := make(chan error, 1)
	go func() {
		schedDone <- sched.Run(ctx, cfg.Simulation.Resolution)
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	if err := server.Stop(); err != nil {
		slog.Error("graceful shutdown error", slog.Any("err", err))
	}
	if err := <-schedDone; err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("scheduler stopped with error", slog.Any("err", err))
	}
	workspaces.CloseAll()
}
