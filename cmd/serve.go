package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/muhammadheryan/toko-api/application/auth"
	pembeliapp "github.com/muhammadheryan/toko-api/application/pembeli"
	produkapp "github.com/muhammadheryan/toko-api/application/produk"
	"github.com/muhammadheryan/toko-api/application/token"
	"github.com/muhammadheryan/toko-api/cmd/config"
	"github.com/muhammadheryan/toko-api/cmd/migration"
	redisclient "github.com/muhammadheryan/toko-api/cmd/redis"
	_ "github.com/muhammadheryan/toko-api/docs"
	pembeliRepo "github.com/muhammadheryan/toko-api/repository/pembeli"
	produkRepo "github.com/muhammadheryan/toko-api/repository/produk"
	redisRepo "github.com/muhammadheryan/toko-api/repository/redis"
	tokenRepo "github.com/muhammadheryan/toko-api/repository/token"
	txRepo "github.com/muhammadheryan/toko-api/repository/tx"
	"github.com/muhammadheryan/toko-api/thirdparty/rabbitmq"
	"github.com/muhammadheryan/toko-api/transport"
	"github.com/muhammadheryan/toko-api/utils/logger"
	"github.com/muhammadheryan/toko-api/utils/password"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	dbConnectRetries = 5
	dbConnectBackoff = 500 * time.Millisecond
	shutdownTimeout  = 10 * time.Second
)

func runServe(cmd *cobra.Command, _ []string) error {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Close()
	}()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := connectDB(ctx, cfg)
	if err != nil {
		logger.Error("err connect db", zap.Error(err))
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migrateUp(cfg); err != nil {
			logger.Error("err migrate", zap.Error(err))
			return err
		}
	}

	// Redis only caches token lookups, the server runs without it
	var redisClient *goredis.Client
	if c, err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, token cache disabled", zap.Error(err))
	} else {
		redisClient = c
		defer func() {
			_ = redisclient.Close()
		}()
	}

	var publisher authapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Error("err connect rabbitmq", zap.Error(err))
			return err
		}
		defer func() {
			_ = p.Close()
		}()
		publisher = p
	}

	// Initialize repositories
	PembeliRepo := pembeliRepo.NewPembeliRepository(db)
	ProdukRepo := produkRepo.NewProdukRepository(db)
	TokenRepo := tokenRepo.NewTokenRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)
	issuer := token.NewIssuer(cfg, TokenRepo, RedisRepo)

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, PembeliRepo, TxRepo, issuer, hasher, publisher)
	PembeliApp := pembeliapp.NewPembeliApp(PembeliRepo, ProdukRepo, TxRepo, issuer, hasher)
	ProdukApp := produkapp.NewProdukApp(ProdukRepo, PembeliRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpTransport := transport.NewTransport(cfg, AuthApp, PembeliApp, ProdukApp, reg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("failed server", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed shutdown", zap.Error(err))
		return err
	}
	return <-errCh
}

func connectDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	var db *sqlx.DB
	backoff := retry.WithMaxRetries(dbConnectRetries, retry.NewExponential(dbConnectBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		conn, err := sqlx.ConnectContext(ctx, "mysql", cfg.GetDSN())
		if err != nil {
			logger.Warn("database not ready", zap.String("host", cfg.Database.Host), zap.Error(err))
			return retry.RetryableError(err)
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

func migrateUp(cfg *config.Config) error {
	m, err := migration.NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = m.Close()
	}()
	return m.Up()
}
