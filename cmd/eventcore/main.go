// eventcore server runs the event-ingestion core: ops HTTP endpoints,
// seeded source/connector registry, retention loop, and the manual
// trigger surface for connector runs, replay, SLA sync and drift checks.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quantmuse/eventcore/pkg/api"
	"github.com/quantmuse/eventcore/pkg/audit"
	"github.com/quantmuse/eventcore/pkg/backtest"
	"github.com/quantmuse/eventcore/pkg/cleanup"
	"github.com/quantmuse/eventcore/pkg/config"
	"github.com/quantmuse/eventcore/pkg/connector"
	"github.com/quantmuse/eventcore/pkg/database"
	"github.com/quantmuse/eventcore/pkg/governance"
	"github.com/quantmuse/eventcore/pkg/matrix"
	"github.com/quantmuse/eventcore/pkg/models"
	"github.com/quantmuse/eventcore/pkg/services"
	"github.com/quantmuse/eventcore/pkg/sla"
	"github.com/quantmuse/eventcore/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	auditService := audit.NewService(dbClient.Client)
	sourceService := services.NewSourceService(dbClient.Client, auditService)
	eventService := services.NewEventService(dbClient.Client)
	connectorService := services.NewConnectorService(dbClient.Client, sourceService, auditService)
	slog.Info("Services initialized")

	// 4. Register seeded sources and connectors (idempotent upserts)
	if err := registerSeeds(ctx, cfg, sourceService, connectorService); err != nil {
		slog.Error("Failed to register configured sources/connectors", "error", err)
		os.Exit(1)
	}

	// 5. Connector runtime and replay engine
	matrixEngine := matrix.NewEngine(dbClient.Client)
	runtime := connector.NewRuntime(dbClient.Client, connectorService, sourceService, eventService, matrixEngine, auditService)
	replayEngine := connector.NewReplayEngine(dbClient.Client, connectorService, sourceService, eventService, auditService)

	// 6. SLA monitor
	slaMonitor := sla.NewMonitor(dbClient.Client, connectorService, auditService)

	// 7. Governance with optional backtest comparator.
	// Note: grpc.NewClient dials lazily; the connection happens on first RPC.
	var comparator backtest.Comparator
	if cfg.BacktestAddr != "" {
		client, err := backtest.NewClient(cfg.BacktestAddr)
		if err != nil {
			slog.Error("Failed to initialize backtest client", "addr", cfg.BacktestAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := client.Close(); err != nil {
				slog.Error("Error closing backtest client", "error", err)
			}
		}()
		comparator = client
		slog.Info("Backtest comparator initialized", "addr", cfg.BacktestAddr)
	}
	governanceService := governance.NewService(dbClient.Client, eventService, comparator, auditService)

	// 8. Background retention loop
	retentionService := services.NewRetentionService(dbClient.Client, services.RetentionPolicy{
		RunAge:           cfg.Retention.RunAge,
		TerminalFailures: cfg.Retention.TerminalFailures,
		SLAHistory:       cfg.Retention.SLAHistory,
		DriftSnapshots:   cfg.Retention.DriftSnapshots,
		AuditLogs:        cfg.Retention.AuditLogs,
	})
	cleanupService := cleanup.NewService(cfg.Retention, retentionService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 9. Ops HTTP server
	httpServer := api.NewServer(dbClient, api.Deps{
		Connectors: connectorService,
		Runtime:    runtime,
		Replay:     replayEngine,
		SLAMonitor: slaMonitor,
		SLAConfig:  cfg.SLA,
		Governance: governanceService,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + strconv.Itoa(cfg.HTTPPort)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("eventcore started successfully",
		"version", version.Full(),
		"sources", len(cfg.Sources),
		"connectors", len(cfg.Connectors))

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// registerSeeds upserts the declaratively configured sources and
// connectors. Both registrations are idempotent, so restarts converge
// on the file's state without clobbering runtime fields like health.
func registerSeeds(ctx context.Context, cfg *config.Config, sources *services.SourceService, connectors *services.ConnectorService) error {
	for _, src := range cfg.Sources {
		if _, err := sources.RegisterSource(ctx, models.RegisterSourceRequest{
			SourceName:          src.SourceName,
			SourceType:          src.SourceType,
			Provider:            src.Provider,
			Timezone:            src.Timezone,
			IngestionLagMinutes: src.IngestionLagMinutes,
			ReliabilityScore:    src.ReliabilityScore,
			CreatedBy:           "config",
			Note:                src.Note,
		}); err != nil {
			return err
		}
	}
	for _, conn := range cfg.Connectors {
		if _, err := connectors.RegisterConnector(ctx, models.RegisterConnectorRequest{
			ConnectorName:        conn.ConnectorName,
			SourceName:           conn.SourceName,
			ConnectorType:        conn.ConnectorType,
			Enabled:              conn.Enabled,
			FetchLimit:           conn.FetchLimit,
			PollIntervalMinutes:  conn.PollIntervalMinutes,
			ReplayBackoffSeconds: conn.ReplayBackoffSeconds,
			MaxRetry:             conn.MaxRetry,
			Config:               conn.Config,
			CreatedBy:            "config",
			Note:                 conn.Note,
		}); err != nil {
			return err
		}
	}
	if len(cfg.Sources) > 0 || len(cfg.Connectors) > 0 {
		slog.Info("Registered configured sources and connectors",
			"sources", len(cfg.Sources),
			"connectors", len(cfg.Connectors))
	}
	return nil
}
