// routed is the shortest-path routing daemon. It loads a graph from disk,
// serves route computations over HTTP, and shuts down gracefully on
// SIGINT/SIGTERM.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dd0wney/cluso-routing/pkg/api"
	"github.com/dd0wney/cluso-routing/pkg/config"
	"github.com/dd0wney/cluso-routing/pkg/graph"
	"github.com/dd0wney/cluso-routing/pkg/logging"
	"github.com/dd0wney/cluso-routing/pkg/metrics"
	"github.com/dd0wney/cluso-routing/pkg/routing"
	"github.com/dd0wney/cluso-routing/pkg/server"
	"github.com/dd0wney/cluso-routing/pkg/validation"
)

var version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	graphFile := flag.String("graph", "", "Path to graph edge-list file (overrides config)")
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *graphFile != "" {
		cfg.Graph.File = *graphFile
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.Logging.Level))
	logging.SetDefaultLogger(logger)
	log := logger.With(logging.Component("main"))

	if cfg.Graph.File == "" {
		log.Error("startup_failed", logging.String("reason", "no graph file configured"))
		os.Exit(1)
	}

	g, err := graph.LoadFile(cfg.Graph.File)
	if err != nil {
		log.Error("graph_load_failed", logging.String("file", cfg.Graph.File), logging.Error(err))
		os.Exit(1)
	}
	meta := g.Metadata()
	log.Info("graph_loaded",
		logging.String("file", cfg.Graph.File),
		logging.Int("node_count", meta.NodeCount),
		logging.Int("edge_count", meta.EdgeCount),
		logging.Bool("has_negative_weights", meta.HasNegativeWeights),
	)

	registry := metrics.Default()

	svc := routing.NewService(g, routing.Options{
		Limits: validation.Limits{
			MaxNodes: cfg.Graph.MaxNodes,
			MaxEdges: cfg.Graph.MaxEdges,
		},
		Retry: routing.RetryConfig{
			MaxAttempts:    cfg.Routing.MaxAttempts,
			InitialBackoff: cfg.Routing.InitialBackoff.AsDuration(),
			MaxBackoff:     cfg.Routing.MaxBackoff.AsDuration(),
			Multiplier:     cfg.Routing.Multiplier,
		},
		DefaultTimeout: cfg.Routing.DefaultTimeout.AsDuration(),
		Logger:         logger,
		Metrics:        registry,
	})

	apiServer := api.NewServer(svc, g, api.Options{
		Logger:  logger,
		Metrics: registry,
		Version: version,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	gs := server.NewGracefulServer(addr, apiServer.Handler(), server.Timeouts{
		Read:  cfg.Server.ReadTimeout.AsDuration(),
		Write: cfg.Server.WriteTimeout.AsDuration(),
		Idle:  2 * time.Minute,
	}, logger)

	gs.SetConfigReloadFunc(func() error {
		reloaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		logger.SetLevel(logging.ParseLevel(reloaded.Logging.Level))
		log.Info("config_reloaded", logging.String("log_level", reloaded.Logging.Level))
		return nil
	})

	if err := gs.Start(); err != nil {
		log.Error("server_failed", logging.Error(err))
		os.Exit(1)
	}
}
