package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maizecandy/seller-help/aiext"
	"github.com/maizecandy/seller-help/alipay"
	"github.com/maizecandy/seller-help/api"
	"github.com/maizecandy/seller-help/db/filedb"
	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/normalize"
	"github.com/maizecandy/seller-help/trust"
	"github.com/maizecandy/seller-help/util"
	"github.com/maizecandy/seller-help/worker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	store := openStore(ctx, config)

	waitGroup, ctx := errgroup.WithContext(ctx)

	var taskDistributor worker.TaskDistributor
	if config.RedisAddress != "" {
		redisOpt := asynq.RedisClientOpt{
			Addr:     config.RedisAddress,
			Password: config.RedisPassword,
		}
		taskDistributor = worker.NewRedisTaskDistributor(redisOpt)
		runTaskProcessor(ctx, waitGroup, redisOpt, store)
		runRescoreScheduler(ctx, waitGroup, config, taskDistributor)
	} else {
		log.Warn().Msg("REDIS_ADDRESS not configured, background rescore disabled")
	}

	runGinServer(ctx, waitGroup, config, store, taskDistributor)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// openStore 按配置选择存储后端：postgres（生产）或 file（开发/单机）
func openStore(ctx context.Context, config util.Config) db.Store {
	if config.StorageDriver == "file" {
		store, err := filedb.NewStore(config.FileStoreDir)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot open file store")
		}
		log.Info().Str("dir", config.FileStoreDir).Msg("file store opened")
		return store
	}

	poolConfig, err := pgxpool.ParseConfig(config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse db config")
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}

	if err := connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot ping database")
	}

	log.Info().
		Int32("max_conns", poolConfig.MaxConns).
		Int32("min_conns", poolConfig.MinConns).
		Msg("database connection pool configured")

	runDBMigration(config.MigrationURL, config.DBSource)

	return db.NewStore(connPool)
}

func runDBMigration(migrationURL string, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create new migrate instance")
	}

	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal().Err(err).Msg("failed to run migrate up")
	}

	log.Info().Msg("db migrated successfully")
}

func runTaskProcessor(
	ctx context.Context,
	waitGroup *errgroup.Group,
	redisOpt asynq.RedisClientOpt,
	store db.Store,
) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store)
	log.Info().Msg("start task processor")

	waitGroup.Go(func() error {
		return taskProcessor.Start()
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown task processor")
		taskProcessor.Shutdown()
		log.Info().Msg("task processor is stopped")
		return nil
	})
}

func runRescoreScheduler(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	taskDistributor worker.TaskDistributor,
) {
	scheduler := worker.NewScheduler(taskDistributor, config.RescoreCronSpec)

	if err := scheduler.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start risk rescore scheduler")
		return
	}

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown risk rescore scheduler")
		scheduler.Stop()
		return nil
	})
}

// runGinServer starts the Gin HTTP server
func runGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
	taskDistributor worker.TaskDistributor,
) {
	// AI 文本抽取客户端（未配置时归一化退回纯正则）
	var extractor normalize.Extractor
	if config.AIExtractBaseURL != "" && config.AIExtractAPIKey != "" {
		extractor = aiext.NewClient(config.AIExtractBaseURL, config.AIExtractAPIKey,
			config.AIExtractModel, config.AIExtractTimeout)
		log.Info().Str("model", config.AIExtractModel).Msg("AI text extractor enabled")
	} else {
		log.Warn().Msg("AI extractor not configured, falling back to pattern-only parsing")
	}

	// 支付宝实名核验客户端（未配置时实名认证返回 503）
	var verifier trust.IdentityVerifier
	if config.AlipayAppID != "" && config.AlipayPrivateKey != "" {
		gateway := config.AlipayGatewayURL
		if gateway == "" {
			gateway = alipay.GatewayProduction
		}
		client, err := alipay.NewClient(gateway, config.AlipayAppID,
			config.AlipayPrivateKey, config.AlipayTimeout)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create alipay client")
		}
		verifier = client
		log.Info().Str("gateway", gateway).Msg("alipay identity verifier enabled")
	} else {
		log.Warn().Msg("alipay not configured, realname authentication disabled")
	}

	server, err := api.NewServer(config, store, extractor, verifier, taskDistributor)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	httpServer := &http.Server{
		Addr:    config.HTTPServerAddress,
		Handler: server.GetRouter(),
		// Avoid slowloris and stuck connections under pressure.
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)
		err = httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed to serve")
			return err
		}
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server forced to shutdown")
			return err
		}

		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}
