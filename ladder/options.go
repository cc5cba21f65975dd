package ladder

import (
	"log/slog"

	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/internal/logging"
)

// Option configures a Solver.
type Option func(*solverConfig)

type solverConfig struct {
	logger      *slog.Logger
	builderOpts []builder.BuilderOption
}

func newSolverConfig(opts ...Option) solverConfig {
	cfg := solverConfig{logger: logging.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLogger sets the logger for build and query diagnostics. The same
// logger is handed to the builder unless WithBuilderOptions overrides it.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *solverConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBuilderOptions passes options through to every graph build.
func WithBuilderOptions(opts ...builder.BuilderOption) Option {
	return func(c *solverConfig) {
		c.builderOpts = append(c.builderOpts, opts...)
	}
}
