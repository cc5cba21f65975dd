// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • logger        = discard logger
//   • uniformLength = false (mixed lengths allowed; such pairs never link)

package builder

import (
	"log/slog"

	"github.com/katalvlaran/wordladder/internal/logging"
)

// builderConfig aggregates all knobs used by the strategies.
// It is passed by VALUE to strategies (immutable to callers).
type builderConfig struct {
	// logger receives one debug record per build.
	logger *slog.Logger
	// uniformLength rejects dictionaries mixing word lengths.
	uniformLength bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger:        logging.NewNop(),
		uniformLength: false,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
