package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bsm-service/internal/domain/repository"
	"bsm-service/internal/infrastructure/config"
	"bsm-service/internal/infrastructure/persistence"
	"bsm-service/internal/infrastructure/router"
	"bsm-service/internal/infrastructure/tcp"
	repo "bsm-service/internal/interface/repository"
	"bsm-service/internal/usecase"
	"bsm-service/pkg/bsm"
	"bsm-service/pkg/logger"
	"bsm-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLoggerWithOptions(cfg.Log)
	defer log.Sync()
	log.Info("Starting BSM Service", "version", cfg.AppVersion)

	// Set up context with cancellation on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.NewMetrics("bsm", prometheus.DefaultRegisterer)

	// Set up repositories
	var (
		airlineRepository repository.AirlineRepository
		airportRepository repository.AirportRepository
		messageRepository repository.BaggageMessageRepository
		mongoClient       *mongo.Client
	)

	if cfg.PostgresDSN != "" {
		log.Info("Connecting to PostgreSQL")
		gormDB, err := persistence.NewPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airlineRepository = repo.NewGormAirlineRepository(gormDB)
		airportRepository = repo.NewGormAirportRepository(gormDB)
	}

	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		mongoClient = client
		messageRepository = repo.NewMongoBaggageMessageRepository(db)
	} else {
		log.Info("No MongoDB configured, keeping baggage messages in memory")
		messageRepository = repo.NewMemoryBaggageMessageRepository()
	}

	// Set up generator
	loader := usecase.NewProfileLoader(airlineRepository, airportRepository, cfg.GeneratorProfilesFile, cfg.GeneratorAirport, log)
	settings, err := loader.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load generator profiles", "error", err)
	}
	generator := bsm.NewGenerator(settings.Options()...)

	// Set up Type-B server
	server := tcp.NewServer(log.With("component", "server"), tcp.ServerOptions{
		StaleTimeout: cfg.StaleTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	if err := server.Listen(cfg.ListenAddr); err != nil {
		log.Fatal("Failed to start Type-B server", "error", err)
	}
	broadcaster := usecase.NewBroadcastWorker(server, generator, cfg.SendInterval, log.With("component", "broadcaster"), m)

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Serve(ctx)
	})

	g.Go(func() error {
		return broadcaster.Run(ctx)
	})

	if cfg.ClientEnabled {
		statusRouter := router.NewStatusRouter(log)
		statusRouter.Register(usecase.NewUpsertHandler(messageRepository, log))
		statusRouter.Register(usecase.NewDeleteHandler(messageRepository, log))
		processor := usecase.NewMessageProcessor(statusRouter, log.With("component", "receiver"), m)

		client := tcp.NewClient[*bsm.Frame](bsm.NewParser(), tcp.ClientOptions{
			MaxBufferBytes: cfg.MaxBufferBytes,
			OnConsumed:     func(n int) { m.BytesConsumed.Add(float64(n)) },
		})
		receiver := usecase.NewReceiveWorker(client, cfg.ServerAddr, cfg.ReceiveInterval, processor, log.With("component", "receiver"), m)

		g.Go(func() error {
			return receiver.Run(ctx)
		})
	}

	g.Go(func() error {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown error", "error", err)
		}
		if err := server.Close(); err != nil {
			log.Error("Type-B server close error", "error", err)
		}
		if mongoClient != nil {
			if err := mongoClient.Disconnect(shutdownCtx); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("BSM Service stopped with error", "error", err)
		return
	}
	log.Info("BSM Service stopped")
}
