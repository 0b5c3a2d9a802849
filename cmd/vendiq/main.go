package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
	"github.com/rs/zerolog"

	"github.com/neomorfeo/vendiq/internal/adapter/fsm"
	"github.com/neomorfeo/vendiq/internal/adapter/otel"
	"github.com/neomorfeo/vendiq/internal/adapter/river"
	"github.com/neomorfeo/vendiq/internal/adapter/smtp"
	"github.com/neomorfeo/vendiq/internal/adapter/sqlite"
	"github.com/neomorfeo/vendiq/internal/app"
	"github.com/neomorfeo/vendiq/internal/config"
	"github.com/neomorfeo/vendiq/internal/domain"
	"github.com/neomorfeo/vendiq/internal/logger"

	handler "github.com/neomorfeo/vendiq/internal/adapter/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)

	ctx := context.Background()

	// --- Telemetry ---
	providers, err := otel.Setup(ctx, otel.ConfigFromEnv())
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// --- Adapters (out) ---
	sqlDB, err := otel.OpenDB(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("opening database")
	}

	db, err := sqlite.OpenFromDB(sqlDB)
	if err != nil {
		log.Fatal().Err(err).Msg("migrating database")
	}
	defer db.Close()

	// The River worker delivers notices over SMTP. Without an SMTP host
	// configured, notices are logged instead of sent.
	var sender domain.Notifier
	if cfg.SMTP.Host != "" {
		sender = smtp.NewMailer(smtp.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	} else {
		log.Info().Msg("no SMTP host configured, notices will only be logged")
		sender = logNotifier{log: log}
	}

	queue, err := river.Setup(ctx, db.SQL(), sender, log)
	if err != nil {
		log.Fatal().Err(err).Msg("river setup")
	}
	if err := queue.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("river start")
	}

	notifier := otel.NewTracingNotifier(river.NewPublisher(queue))
	apps := otel.NewTracingRepository(db.Applications())

	// --- Application ---
	applications := app.NewApplicationService(apps, db.Vendors(), db.Identity(),
		db.Provisioner(), fsm.New(), notifier, log)
	vendors := app.NewVendorService(db.Vendors())

	// --- Adapters (in) ---
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(otelchi.Middleware(cfg.App.Name, otelchi.WithChiRoutes(router)))

	api := humachi.New(router, huma.DefaultConfig(cfg.App.Name, "0.1.0"))
	handler.Register(api, applications, vendors)

	// --- Server ---
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	<-done
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("server shutdown")
	}
	if err := queue.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("river stop")
	}

	log.Info().Msg("stopped")
}

// logNotifier stands in for the mailer in environments without SMTP.
type logNotifier struct {
	log zerolog.Logger
}

func (n logNotifier) SendApprovalNotice(_ context.Context, notice domain.ApprovalNotice) error {
	n.log.Info().Str("email", notice.Email).Str("business", notice.BusinessName).Msg("approval notice")
	return nil
}

func (n logNotifier) SendDeclineNotice(_ context.Context, notice domain.DeclineNotice) error {
	n.log.Info().Str("email", notice.Email).Str("business", notice.BusinessName).Str("reason", notice.Reason).Msg("decline notice")
	return nil
}
