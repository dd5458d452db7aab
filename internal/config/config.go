package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type LuteConfig struct {
	URL              string `toml:"url"`
	SubscriberPrefix string `toml:"subscriber_prefix"`
}

type Neo4jConfig struct {
	URL      string `toml:"url"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type Config struct {
	APIPort int         `toml:"api_port"`
	Lute    LuteConfig  `toml:"lute"`
	Neo4j   Neo4jConfig `toml:"neo4j"`
}

func defaults() *Config {
	return &Config{
		APIPort: 22005,
		Lute: LuteConfig{
			URL:              "localhost:22000",
			SubscriberPrefix: "graph-connector",
		},
		Neo4j: Neo4jConfig{
			URL: "bolt://localhost:7687",
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file, and
// environment variable overrides, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
	}

	if port := os.Getenv("API_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid API_PORT '%s': %w", port, err)
		}
		cfg.APIPort = p
	}
	if url := os.Getenv("LUTE_URL"); url != "" {
		cfg.Lute.URL = url
	}
	if prefix := os.Getenv("LUTE_EVENT_SUBSCRIBER_PREFIX"); prefix != "" {
		cfg.Lute.SubscriberPrefix = prefix
	}
	if url := os.Getenv("NEO4J_URL"); url != "" {
		cfg.Neo4j.URL = url
	}
	if user := os.Getenv("NEO4J_USER"); user != "" {
		cfg.Neo4j.User = user
	}
	if pass := os.Getenv("NEO4J_PASSWORD"); pass != "" {
		cfg.Neo4j.Password = pass
	}

	return cfg, nil
}
