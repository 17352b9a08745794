package entid

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source kinds accepted by Config.
const (
	SourceLocal  = "local"
	SourceBeacon = "beacon"
	SourceStream = "stream"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Source SourceConfig `json:"source" yaml:"source"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

// SourceConfig selects and parameterizes the entropy source.
type SourceConfig struct {
	Kind   string       `json:"kind" yaml:"kind"`
	Beacon BeaconConfig `json:"beacon" yaml:"beacon"`
	Stream StreamConfig `json:"stream" yaml:"stream"`
}

// BeaconConfig parameterizes the HTTP beacon source.
type BeaconConfig struct {
	Endpoints        []string `json:"endpoints" yaml:"endpoints"`
	RequestTimeoutMs int      `json:"requestTimeoutMs" yaml:"requestTimeoutMs"`
	MaxTries         int      `json:"maxTries" yaml:"maxTries"`
}

// StreamConfig parameterizes the websocket stream source.
type StreamConfig struct {
	Endpoint    string `json:"endpoint" yaml:"endpoint"`
	BufferBytes int    `json:"bufferBytes" yaml:"bufferBytes"`
}

// LogConfig controls the service logger.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug|info|warn|error
	Format string `json:"format" yaml:"format"` // text|json
}

// Default returns built-in defaults: local CSPRNG entropy, info-level text
// logging.
func Default() Config {
	return Config{
		Source: SourceConfig{
			Kind: SourceLocal,
			Beacon: BeaconConfig{
				RequestTimeoutMs: 2000,
				MaxTries:         3,
			},
			Stream: StreamConfig{
				BufferBytes: 64 << 10,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// FromEnv overlays ENTID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("ENTID_SOURCE_KIND"); v != "" {
		cfg.Source.Kind = v
	}
	if v := os.Getenv("ENTID_BEACON_ENDPOINTS"); v != "" {
		parts := strings.Split(v, ",")
		cfg.Source.Beacon.Endpoints = nil
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.Source.Beacon.Endpoints = append(cfg.Source.Beacon.Endpoints, p)
			}
		}
	}
	if v := os.Getenv("ENTID_BEACON_REQUEST_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Source.Beacon.RequestTimeoutMs = n
		}
	}
	if v := os.Getenv("ENTID_BEACON_MAX_TRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Source.Beacon.MaxTries = n
		}
	}
	if v := os.Getenv("ENTID_STREAM_ENDPOINT"); v != "" {
		cfg.Source.Stream.Endpoint = v
	}
	if v := os.Getenv("ENTID_STREAM_BUFFER_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Source.Stream.BufferBytes = n
		}
	}
	if v := os.Getenv("ENTID_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ENTID_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// Validate reports invalid settings.
func (c Config) Validate() error {
	switch c.Source.Kind {
	case SourceLocal:
	case SourceBeacon:
		if len(c.Source.Beacon.Endpoints) == 0 {
			return fmt.Errorf("entid: beacon source needs at least one endpoint")
		}
	case SourceStream:
		if c.Source.Stream.Endpoint == "" {
			return fmt.Errorf("entid: stream source needs an endpoint")
		}
	default:
		return fmt.Errorf("entid: unknown source kind %q", c.Source.Kind)
	}
	return nil
}
