// Package config loads carfleet settings from defaults, an optional YAML
// file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the API base used when none is configured.
const DefaultAPIURL = "http://localhost:8080/car-fleet-manager"

// Environment variables read by Load.
const (
	EnvAPIURL       = "CARFLEET_API_URL"
	EnvLogFile      = "CARFLEET_LOG_FILE"
	EnvLogLevel     = "CARFLEET_LOG_LEVEL"
	EnvMetricsAddr  = "CARFLEET_METRICS_ADDR"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName  = "OTEL_SERVICE_NAME"
	EnvOTLPInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
)

type Config struct {
	API       APIConfig       `yaml:"api"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"` // empty disables the /metrics server
}

type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// Load builds the configuration. configPath may be empty.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		API: APIConfig{BaseURL: DefaultAPIURL},
		Log: LogConfig{Level: "info"},
		Telemetry: TelemetryConfig{
			ServiceName: "carfleet",
			Insecure:    true,
		},
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvMetricsAddr); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv(EnvOTLPEndpoint); v != "" {
		cfg.Telemetry.Endpoint = v
	}
	if v := os.Getenv(EnvServiceName); v != "" {
		cfg.Telemetry.ServiceName = v
	}
	if v := os.Getenv(EnvOTLPInsecure); v != "" {
		cfg.Telemetry.Insecure = v == "true" || v == "1"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API base URL %q: %w", c.API.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API base URL %q: must be an absolute http(s) URL", c.API.BaseURL)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}
