package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/jobs"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAdmin "github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
)

const serviceName = "barber-booking"

func main() {
	cfg := config.Load()
	log := logger.New(serviceName, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA
	// ======================================================
	store, err := dbpkg.OpenStore(ctx, cfg, loc, log)
	if err != nil {
		log.Error("open store failed", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}

	var bus events.Bus = events.NewLocalBus()
	if cfg.RedisURL != "" {
		rb, err := events.NewRedisBus(cfg.RedisURL, log)
		if err != nil {
			log.Error("redis bus failed", "err", err)
			os.Exit(1)
		}
		if err := rb.Ping(ctx); err != nil {
			log.Error("redis unreachable", "err", err)
			os.Exit(1)
		}
		bus = rb
		log.Info("using redis change bus")
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(serviceName)
	}

	dispatcher := audit.NewDispatcher(audit.New(store), log, m.AuditDropped)

	deps := routes.Deps{
		Store:     store,
		Bus:       bus,
		Issuer:    auth.NewIssuer(cfg.JWTSecret, cfg.SessionTTL),
		Audit:     dispatcher,
		Metrics:   m,
		Log:       log,
		Location:  loc,
		RateLimit: cfg.RateLimit,
	}

	if err := ucAdmin.Seed(ctx, deps.AdminDeps(), cfg.AdminPassphrase); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}

	// ======================================================
	// JOBS
	// ======================================================
	scheduler := jobs.NewScheduler(loc)
	purge := jobs.NewPurgeJob(ucAdmin.NewBlockedDates(deps.AdminDeps()), m, log)
	if err := scheduler.Add(cfg.PurgeCron, purge); err != nil {
		log.Error("invalid purge schedule", "spec", cfg.PurgeCron, "err", err)
		os.Exit(1)
	}
	scheduler.Start()

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "store", cfg.StoreDriver, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "err", err)
	}
	scheduler.Stop(shutdownCtx)
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("audit drain", "err", err)
	}
	if err := bus.Close(); err != nil {
		log.Error("bus close", "err", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error("store close", "err", err)
	}
}
