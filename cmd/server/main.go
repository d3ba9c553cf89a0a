// Command server runs the conference companion HTTP API.
package main

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

	"github.com/spf13/pflag"

	"confcompanion/config"
	"confcompanion/internal/adapters/auth"
	"confcompanion/internal/adapters/cache"
	"confcompanion/internal/adapters/email"
	"confcompanion/internal/adapters/sessionize"
	httpdelivery "confcompanion/internal/delivery/http"
	"confcompanion/internal/domain"
	"confcompanion/internal/repository/postgres"
	"confcompanion/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var skipMigrate, seed bool

	flagSet := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flagSet.BoolVar(&skipMigrate, "skip-migrate", false, "do not apply database migrations at start-up")
	flagSet.BoolVar(&seed, "seed", false, "seed the baseline conference even when SEED_ON_START is off")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Open(ctx, postgres.Config{
		URL:          cfg.DBUrl,
		Driver:       cfg.DBDriver,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connected", "driver", cfg.DBDriver)

	if !skipMigrate {
		if err := postgres.Migrate(ctx, db.DB); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	storage := postgres.NewStorage(db, postgres.RetryPolicy{
		MaxAttempts: cfg.DBRetryAttempts,
		BaseDelay:   cfg.DBRetryBaseDelay,
	}, logger)
	postgres.StartPoolMetrics(ctx, db, 15*time.Second)

	if seed || cfg.SeedOnStart {
		storage.SeedDatabase(ctx)
	}

	conferenceCache := newConferenceCache(ctx, cfg, logger)

	emailService, err := newEmailService(cfg, logger)
	if err != nil {
		return err
	}

	conferences := services.NewConferenceService(storage, conferenceCache, logger, cfg.RequestTimeout)
	catalog := services.NewCatalogService(conferences, storage, storage, storage, storage, cfg.RequestTimeout)
	attendee := services.NewAttendeeService(services.AttendeeDeps{
		Conferences:           conferences,
		Sessions:              storage,
		Bookmarks:             storage,
		Surveys:               storage,
		Users:                 storage,
		Email:                 emailService,
		DefaultConferenceSlug: cfg.DefaultConferenceSlug,
	}, logger, cfg.RequestTimeout)
	fetcher := sessionize.NewHTTPFetcher(&http.Client{Timeout: 30 * time.Second}, cfg.SessionizeBaseURL)
	importer := services.NewScheduleImportService(conferences, storage, fetcher, logger, cfg.RequestTimeout)

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, every protected route will reject its token")
	}

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:         logger,
		Conferences:    conferences,
		Catalog:        catalog,
		Attendee:       attendee,
		Importer:       importer,
		Health:         storage,
		Verifier:       auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	logger.Info("server stopped gracefully")
	return nil
}

// newConferenceCache connects to Redis when configured. Any failure degrades
// to an uncached service rather than stopping start-up.
func newConferenceCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) domain.ConferenceCache {
	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, conference cache disabled")
		return cache.Noop{}
	}
	rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("redis unavailable, conference cache disabled", "err", err)
		return cache.Noop{}
	}
	logger.Info("conference cache enabled", "ttl", cfg.CacheTTL)
	return cache.NewConferenceCache(rdb, cfg.CacheTTL)
}

func newEmailService(cfg *config.Config, logger *slog.Logger) (domain.EmailService, error) {
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}
	return services.NewEmailService(mailer, email.NewTemplateRenderer(), logger), nil
}
