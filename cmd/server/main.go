package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"standcap-service/internal/domain/entity"
	"standcap-service/internal/infrastructure/config"
	"standcap-service/internal/infrastructure/persistence"
	standcapRepo "standcap-service/internal/interface/repository"
	"standcap-service/internal/usecase"
	"standcap-service/pkg/cache"
	"standcap-service/pkg/logger"
	"standcap-service/pkg/metrics"
	"standcap-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Stand Capacity Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	zone, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Fatal("Failed to load time zone", "zone", cfg.TimeZone, "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection for the configuration store
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up MongoDB connection for the maintenance store
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Set up repositories
	configRepository := standcapRepo.NewGormConfigurationRepository(gormDB)
	maintenanceRepository := standcapRepo.NewMongoMaintenanceRepository(db)

	// Set up metrics and the shared reference cache
	m := metrics.NewMetrics("standcap")
	refCache := cache.New(cfg.CacheSweepInterval, m)
	refCache.StartSweeper()
	defer refCache.Stop()

	// Set up the engine
	snapshotService := usecase.NewSnapshotService(configRepository, refCache, cfg.ConfigTTL, zone, m, log)
	templateService := usecase.NewTemplateService(refCache, cfg.DerivedTTL, m, log)
	partition := entity.NewStatusPartition(cfg.DefiniteStatusIDs, cfg.PotentialStatusIDs)
	impactService := usecase.NewImpactService(templateService, partition, cfg.MaxParallelDates, m, log)

	recompute := func() {
		start := time.Now().In(zone)
		end := start.AddDate(0, 0, cfg.LookAheadDays)
		from, _ := utils.ParseDate(utils.FormatDate(start), zone)
		to, _ := utils.ParseDate(utils.FormatDate(end), zone)

		snap, err := snapshotService.Load(ctx)
		if err != nil {
			log.Error("Failed to load configuration snapshot", "error", err)
			return
		}
		maintenance, err := maintenanceRepository.FindOverlapping(ctx, from, to.AddDate(0, 0, 1))
		if err != nil {
			log.Error("Failed to load maintenance requests", "error", err)
			return
		}

		impacts, err := impactService.ComputeDailyImpact(ctx, snap, nil,
			utils.FormatDate(from), utils.FormatDate(to), maintenance)
		if err != nil {
			log.Error("Failed to compute daily impact", "error", err)
			return
		}
		for _, impact := range impacts {
			if impact.Definite.Reduction.Total > 0 || impact.Potential.Reduction.Total > 0 {
				log.Info("Capacity reduced by maintenance",
					"date", impact.Date,
					"original", impact.Original.Total,
					"afterDefinite", impact.AfterDefinite.Total,
					"final", impact.Final.Total)
			}
		}
	}

	// Initial run, then periodic recomputation with fresh snapshots
	go func() {
		recompute()

		ticker := time.NewTicker(cfg.RecomputeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info("Recompute loop stopped")
				return
			case <-ticker.C:
				refCache.Flush("config")
				recompute()
			}
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Stand Capacity Service stopped")
}
