package queryspec

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
)

// EngineConfig contains configuration for the specification engine.
type EngineConfig struct {
	// Schema describes the root entity the engine builds predicates for.
	// Field navigation paths on incoming criteria resolve against it.
	// REQUIRED unless Builders is non-empty.
	Schema *arrow.Schema

	// Builders is the ordered list of predicate builders. For each
	// criterion the first builder whose Supports returns true wins, so
	// order is behavior: a custom builder placed before the default one
	// overrides it for the criteria it claims.
	// OPTIONAL: If empty, a single DefaultPredicateBuilder over Schema is used.
	Builders []PredicateBuilder

	// Logger for internal logging.
	// OPTIONAL: Uses slog.Default() if nil.
	// Note: If LogLevel is specified, a new logger will be created with that level.
	Logger *slog.Logger

	// LogLevel sets the logging level.
	// OPTIONAL: If nil, uses Info level.
	// If Logger is also provided, LogLevel is ignored (use pre-configured logger).
	LogLevel *slog.Level
}

// validateConfig checks that required EngineConfig fields are valid.
func validateConfig(config EngineConfig) error {
	if config.Schema == nil && len(config.Builders) == 0 {
		return fmt.Errorf("schema is required when no builders are provided")
	}
	return nil
}

// configLogger resolves the logger from config per the documented defaults.
func configLogger(config EngineConfig) *slog.Logger {
	if config.Logger != nil {
		return config.Logger
	}
	if config.LogLevel != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: *config.LogLevel,
		}))
	}
	return slog.Default()
}
