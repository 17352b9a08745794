package entid

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rzbill/entid/pkg/entropy"
	"github.com/rzbill/entid/pkg/log"
	"github.com/rzbill/entid/pkg/uuid"
)

// Service binds a configured entropy source to the identifier generators.
// Construct it once with New; generation methods are safe for concurrent
// use.
type Service struct {
	logger log.Logger
	source entropy.Source
	gen    *uuid.Generator
}

// New builds a Service from cfg. Initialization is explicit: a source that
// cannot be constructed fails here, not on the first V7 call.
func New(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log)
	source, err := newSource(cfg.Source, logger)
	if err != nil {
		return nil, fmt.Errorf("entid: entropy source: %w", err)
	}
	logger.Info("entropy source initialized", log.Str("kind", cfg.Source.Kind))

	return &Service{
		logger: logger,
		source: source,
		gen:    uuid.NewGenerator(source),
	}, nil
}

// V7 returns one time-ordered version 7 UUID.
func (s *Service) V7(ctx context.Context) (uuid.UUID, error) {
	return s.gen.New(ctx)
}

// V7Batch returns n version 7 UUIDs; n must be positive.
func (s *Service) V7Batch(ctx context.Context, n int) ([]uuid.UUID, error) {
	return s.gen.NewBatch(ctx, n)
}

// V5 returns the deterministic version 5 UUID for namespace and name.
func (s *Service) V5(ns uuid.UUID, name []byte) uuid.UUID {
	return uuid.NewV5(ns, name)
}

// Render returns the textual form of u.
func (s *Service) Render(u uuid.UUID, f uuid.Format) string {
	return uuid.Render(u, f)
}

// Close releases the entropy source if it holds a connection.
func (s *Service) Close() error {
	if c, ok := s.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// newLogger builds the service logger from config.
func newLogger(cfg LogConfig) log.Logger {
	var formatter log.Formatter = &log.TextFormatter{}
	if cfg.Format == "json" {
		formatter = &log.JSONFormatter{}
	}

	level := log.InfoLevel
	switch cfg.Level {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	return log.NewLogger(log.WithLevel(level), log.WithFormatter(formatter))
}

// newSource builds the configured entropy source.
func newSource(cfg SourceConfig, logger log.Logger) (entropy.Source, error) {
	switch cfg.Kind {
	case SourceLocal:
		return entropy.NewLocal(), nil
	case SourceBeacon:
		return entropy.NewBeacon(cfg.Beacon.Endpoints,
			entropy.WithRequestTimeout(time.Duration(cfg.Beacon.RequestTimeoutMs)*time.Millisecond),
			entropy.WithMaxTries(cfg.Beacon.MaxTries),
			entropy.WithLogger(logger.WithComponent("entropy")),
		)
	case SourceStream:
		return entropy.NewStream(cfg.Stream.Endpoint,
			entropy.WithStreamBuffer(cfg.Stream.BufferBytes),
			entropy.WithStreamLogger(logger.WithComponent("entropy")),
		), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}
