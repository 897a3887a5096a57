// Package config loads the routing daemon's configuration from a YAML file
// with environment-variable overrides. Precedence: defaults, then file, then
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-routing/pkg/validation"
)

// Duration wraps time.Duration so YAML configs can say "5s" or "100ms"
type Duration time.Duration

// UnmarshalYAML parses a duration string such as "250ms" or "5s"
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration back to its string form
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// AsDuration returns the underlying time.Duration
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// Config is the full daemon configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Graph   GraphConfig   `yaml:"graph"`
	Routing RoutingConfig `yaml:"routing"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Host            string   `yaml:"host"`
	Port            int      `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// GraphConfig configures graph loading and size limits
type GraphConfig struct {
	File     string `yaml:"file"`
	MaxNodes int    `yaml:"max_nodes"`
	MaxEdges int    `yaml:"max_edges"`
}

// RoutingConfig configures the route computation pipeline
type RoutingConfig struct {
	DefaultTimeout Duration `yaml:"default_timeout"`
	MaxAttempts    int      `yaml:"max_attempts"`
	InitialBackoff Duration `yaml:"initial_backoff"`
	MaxBackoff     Duration `yaml:"max_backoff"`
	Multiplier     float64  `yaml:"backoff_multiplier"`
}

// LoggingConfig configures structured log output
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file or overrides are given
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     Duration(10 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			ShutdownTimeout: Duration(15 * time.Second),
		},
		Graph: GraphConfig{
			MaxNodes: 10000,
			MaxEdges: 100000,
		},
		Routing: RoutingConfig{
			DefaultTimeout: Duration(5 * time.Second),
			MaxAttempts:    3,
			InitialBackoff: Duration(100 * time.Millisecond),
			MaxBackoff:     Duration(5 * time.Second),
			Multiplier:     2.0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path (skipped when path is empty), applies
// environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnvOverrides lets deployments tweak single values without shipping a
// config file. Variables use the ROUTING_ prefix.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROUTING_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("ROUTING_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ROUTING_GRAPH_FILE"); v != "" {
		cfg.Graph.File = v
	}
	if v := os.Getenv("ROUTING_MAX_NODES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Graph.MaxNodes = n
		}
	}
	if v := os.Getenv("ROUTING_MAX_EDGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Graph.MaxEdges = n
		}
	}
	if v := os.Getenv("ROUTING_DEFAULT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Routing.DefaultTimeout = Duration(d)
		}
	}
	if v := os.Getenv("ROUTING_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Routing.MaxAttempts = n
		}
	}
	if v := os.Getenv("ROUTING_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks every field and reports all violations together
func (c Config) Validate() error {
	return validation.NewConfigValidator("config").
		Required("server.host", c.Server.Host).
		RangeInt("server.port", c.Server.Port, 1, 65535).
		MinDuration("server.read_timeout", c.Server.ReadTimeout.AsDuration(), time.Second).
		MinDuration("server.write_timeout", c.Server.WriteTimeout.AsDuration(), time.Second).
		MinDuration("server.shutdown_timeout", c.Server.ShutdownTimeout.AsDuration(), time.Second).
		MinInt("graph.max_nodes", c.Graph.MaxNodes, 1).
		MinInt("graph.max_edges", c.Graph.MaxEdges, 1).
		MinDuration("routing.default_timeout", c.Routing.DefaultTimeout.AsDuration(), time.Millisecond).
		MaxDuration("routing.default_timeout", c.Routing.DefaultTimeout.AsDuration(), 5*time.Minute).
		RangeInt("routing.max_attempts", c.Routing.MaxAttempts, 1, 10).
		MinDuration("routing.initial_backoff", c.Routing.InitialBackoff.AsDuration(), time.Millisecond).
		MinDuration("routing.max_backoff", c.Routing.MaxBackoff.AsDuration(), c.Routing.InitialBackoff.AsDuration()).
		MinFloat("routing.backoff_multiplier", c.Routing.Multiplier, 1.0).
		Validate()
}
