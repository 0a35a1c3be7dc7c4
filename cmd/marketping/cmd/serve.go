package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/marketping/marketping/internal/api/handlers"
	"github.com/marketping/marketping/internal/api/middleware"
	"github.com/marketping/marketping/internal/config"
	"github.com/marketping/marketping/internal/engine"
	"github.com/marketping/marketping/internal/market"
	"github.com/marketping/marketping/internal/notify"
	"github.com/marketping/marketping/internal/store"
	"github.com/marketping/marketping/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and price reconciler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.NewPostgresStore(
		ctx,
		cfg.Database.DSN(),
		store.WithPoolSize(cfg.Database.PoolSize),
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	limiter := market.NewRateLimiter(
		cfg.Market.RateLimit.PerSecond,
		cfg.Market.RateLimit.Burst,
		cfg.Market.RateLimit.DailyLimit,
	)
	mc := market.NewHTTPClient(
		market.WithBaseURL(cfg.Market.BaseURL),
		market.WithRateLimiter(limiter),
	)

	notifier := buildNotifier(cfg, log)

	rec := engine.NewReconciler(st, mc, notifier,
		engine.WithLogger(log),
		engine.WithRowTimeout(cfg.Schedule.RowTimeout),
		engine.WithStaggerOffset(cfg.Schedule.StaggerOffset),
	)

	sched, err := engine.NewScheduler(rec, st, cfg.Schedule.PollInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start(ctx)

	e := buildServer(st, mc, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"poll_interval", cfg.Schedule.PollInterval.String(),
	)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()

	// Let an in-flight reconcile cycle finish before closing the store.
	<-sched.Stop().Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func buildNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		opts := []notify.DiscordOption{}
		if cfg.Notifications.Discord.APIURL != "" {
			opts = append(opts, notify.WithAPIURL(cfg.Notifications.Discord.APIURL))
		}
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.BotToken, opts...)
	}
	return notify.NewNoOpNotifier(log)
}

func buildServer(st store.Store, mc market.Client, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	alerts := handlers.NewAlertHandler(st, mc)
	mkt := handlers.NewMarketHandler(mc)
	jobs := handlers.NewJobsHandler(st)

	v1 := e.Group("/api/v1")
	v1.GET("/guilds/:guild/users/:user/alerts", alerts.List)
	v1.POST("/guilds/:guild/users/:user/alerts", alerts.Create)
	v1.DELETE("/guilds/:guild/users/:user/alerts/:item", alerts.Delete)
	v1.GET("/market/resolve", mkt.Resolve)
	v1.GET("/market/search", mkt.Search)
	v1.GET("/jobs/:job_name", jobs.History)

	return e
}
