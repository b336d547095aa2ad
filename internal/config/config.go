// Package config loads the fleet definition from a YAML file, with .env
// overrides for the deployment-specific knobs.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete fleet run configuration.
type Config struct {
	Run      RunConfig       `yaml:"run"`
	Nodes    []NodeConfig    `yaml:"nodes"`
	Carriers []CarrierConfig `yaml:"carriers"`
	Log      LogConfig       `yaml:"log"`
}

// RunConfig controls how the auction cycle is driven.
type RunConfig struct {
	Ticks int `yaml:"ticks"`
	// BoardURL points at a remote auctioneer service. Empty runs the
	// auction house in-process.
	BoardURL         string  `yaml:"board_url"`
	MaxRouteDistance float64 `yaml:"max_route_distance"`
	ReportPath       string  `yaml:"report_path"`
}

// NodeConfig is one node of the shared transport network.
type NodeConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// CarrierConfig is one carrier: its depot, pricing model, offer budget and
// initial ledger.
type CarrierConfig struct {
	Name        string        `yaml:"name"`
	Depot       string        `yaml:"depot"`
	Tariff      TariffConfig  `yaml:"tariff"`
	OffersLimit int           `yaml:"offers_limit"`
	Orders      []OrderConfig `yaml:"orders"`
}

// TariffConfig holds the linear revenue and cost coefficients.
type TariffConfig struct {
	A1 float64 `yaml:"a1"`
	A2 float64 `yaml:"a2"`
	B1 float64 `yaml:"b1"`
	B2 float64 `yaml:"b2"`
}

// OrderConfig is one pickup/delivery pair in a carrier's initial ledger.
type OrderConfig struct {
	Pickup   string `yaml:"pickup"`
	Delivery string `yaml:"delivery"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load reads the YAML fleet definition and applies .env overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BOARD_URL"); v != "" {
		cfg.Run.BoardURL = v
	}
	if v := os.Getenv("TICKS"); v != "" {
		if ticks, err := strconv.Atoi(v); err == nil {
			cfg.Run.Ticks = ticks
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Run.Ticks <= 0 {
		cfg.Run.Ticks = 100
	}
	if cfg.Run.MaxRouteDistance <= 0 {
		cfg.Run.MaxRouteDistance = 8000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

func (c *Config) validate() error {
	if len(c.Nodes) == 0 {
		return fmt.Errorf("no nodes defined")
	}
	if len(c.Carriers) == 0 {
		return fmt.Errorf("no carriers defined")
	}

	known := make(map[string]bool, len(c.Nodes))
	for _, node := range c.Nodes {
		if node.ID == "" {
			return fmt.Errorf("node with empty id")
		}
		if known[node.ID] {
			return fmt.Errorf("duplicate node %q", node.ID)
		}
		known[node.ID] = true
	}

	names := make(map[string]bool, len(c.Carriers))
	for _, carrier := range c.Carriers {
		if carrier.Name == "" {
			return fmt.Errorf("carrier with empty name")
		}
		if names[carrier.Name] {
			return fmt.Errorf("duplicate carrier %q", carrier.Name)
		}
		names[carrier.Name] = true

		if !known[carrier.Depot] {
			return fmt.Errorf("carrier %q: unknown depot %q", carrier.Name, carrier.Depot)
		}
		for _, order := range carrier.Orders {
			if !known[order.Pickup] {
				return fmt.Errorf("carrier %q: unknown pickup %q", carrier.Name, order.Pickup)
			}
			if !known[order.Delivery] {
				return fmt.Errorf("carrier %q: unknown delivery %q", carrier.Name, order.Delivery)
			}
		}
	}
	return nil
}
