// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// options.go - functional options for the builder package.

package builder

import "log/slog"

// BuilderOption customizes a build by mutating a builderConfig instance
// before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithLogger sets the structured logger for build diagnostics.
// A nil logger is ignored and the silent default is kept.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUniformLength makes the builders reject dictionaries whose words do not
// all have the same length (ErrInvalidDictionary). Without it, words of other
// lengths become isolated nodes.
func WithUniformLength() BuilderOption {
	return func(c *builderConfig) {
		c.uniformLength = true
	}
}
