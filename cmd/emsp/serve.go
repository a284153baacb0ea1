package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/emsp/platform/internal/api"
	"github.com/emsp/platform/internal/api/handler"
	"github.com/emsp/platform/internal/api/metrics"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/internal/core/service"
	"github.com/emsp/platform/internal/infrastructure/config"
	"github.com/emsp/platform/internal/infrastructure/db/mongo"
	"github.com/emsp/platform/internal/infrastructure/db/redis"
	"github.com/emsp/platform/internal/infrastructure/revocation"
	"github.com/emsp/platform/internal/infrastructure/security"
	"github.com/emsp/platform/pkg/logger"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server. The process stops gracefully on SIGINT or
SIGTERM, waiting up to SHUTDOWN_TIMEOUT for in-flight requests.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "emsp",
		Version: version,
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer disconnect(client, log)
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	if err := prepareDatabase(ctx, db, log); err != nil {
		return err
	}

	readiness := map[string]handler.Check{
		"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
	}

	revoked, closeStore, err := openRevocationStore(ctx, cfg, log, readiness)
	if err != nil {
		return err
	}
	defer closeStore()

	tokens, err := security.NewJWTCodec(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn)
	if err != nil {
		return err
	}
	hasher := security.NewBcryptHasher(cfg.JWT.BcryptCost)

	users := mongo.NewUserRepository(db)
	e := api.NewRouter(api.Dependencies{
		Logger: log,
		Auth: service.NewAuthService(
			users,
			hasher,
			tokens,
			metrics.CountRevocations(revoked),
			log.With().Str("component", "auth").Logger(),
		),
		Profiles:  service.NewProfileService(users, hasher, log.With().Str("component", "profile").Logger()),
		Products:  service.NewProductService(mongo.NewProductRepository(db), log.With().Str("component", "products").Logger()),
		Orders:    service.NewOrderService(mongo.NewOrderRepository(db), log.With().Str("component", "orders").Logger()),
		Moments:   service.NewMomentService(mongo.NewMomentRepository(db), log.With().Str("component", "moments").Logger()),
		Readiness: readiness,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// openRevocationStore selects the revoked-token backend named by the
// configuration. The returned func releases it.
func openRevocationStore(
	ctx context.Context,
	cfg *config.Config,
	log zerolog.Logger,
	readiness map[string]handler.Check,
) (ports.RevokedTokenSet, func(), error) {
	switch cfg.Revocation.Store {
	case config.RevocationMemory:
		store := revocation.NewMemoryStore()
		go store.Run(ctx, cfg.Revocation.PurgeInterval, log.With().Str("component", "revocation").Logger())
		log.Warn().Msg("revoked tokens are kept in memory and lost on restart")
		return store, func() {}, nil
	default:
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  cfg.Redis.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		readiness["redis"] = redis.Check(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
		return redis.NewRevokedTokens(rdb), func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close redis client")
			}
		}, nil
	}
}

// ensureSchema creates the unique and lookup indexes. Tests replace it.
var ensureSchema = mongo.EnsureIndexes

// prepareDatabase makes sure the unique username and email indexes exist
// before the first request is served. Index creation is idempotent.
func prepareDatabase(ctx context.Context, db *mongodriver.Database, log zerolog.Logger) error {
	if err := ensureSchema(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	log.Info().Msg("mongodb indexes ensured")
	return nil
}

func disconnect(client *mongodriver.Client, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), mongo.DisconnectTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("failed to disconnect from mongodb")
	}
}
