package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/internal/logging"
	"github.com/katalvlaran/wordladder/ladder"
)

// newRootCmd assembles the command tree. Each call returns a fresh tree so
// tests can run commands side by side.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wordladder",
		Short:         "Find shortest word ladders in a dictionary",
		Long:          `wordladder builds a graph of words that differ by exactly one letter and answers shortest-ladder queries with a breadth-first search.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("dict", "", "Dictionary file: plain text, or a YAML/JSON set file")
	root.PersistentFlags().String("set", "", "Name of the set to use from a set file")
	root.PersistentFlags().String("strategy", builder.SmallDictionary.String(), "Graph build strategy: small or large")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	root.PersistentFlags().Bool("strict", false, "Reject dictionaries with empty, non-lowercase or mixed-length words")
	_ = root.MarkPersistentFlagRequired("dict")

	root.AddCommand(newPathCmd(), newGraphCmd())

	return root
}

// loadSolver reads the dictionary named by the flags and builds its graph.
func loadSolver(cmd *cobra.Command) (*ladder.Solver, *slog.Logger, error) {
	flags := cmd.Flags()
	dictPath, _ := flags.GetString("dict")
	setName, _ := flags.GetString("set")
	strategyName, _ := flags.GetString("strategy")
	levelName, _ := flags.GetString("log-level")
	strict, _ := flags.GetBool("strict")

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	strategy, err := builder.ParseStrategy(strategyName)
	if err != nil {
		return nil, nil, err
	}

	words, err := loadWords(dictPath, setName)
	if err != nil {
		return nil, nil, err
	}
	if strict {
		if err := dictionary.Validate(words); err != nil {
			return nil, nil, err
		}
	}
	logger.Debug("dictionary loaded", "dict", dictPath, "set", setName, "words", len(words))

	s := ladder.New(words, ladder.WithLogger(logger))
	if err := s.Build(strategy); err != nil {
		return nil, nil, err
	}

	return s, logger, nil
}

func loadWords(path, set string) ([]string, error) {
	if set == "" {
		return dictionary.LoadFile(path)
	}
	sets, err := dictionary.LoadSetsFile(path)
	if err != nil {
		return nil, err
	}
	words, err := sets.Get(set)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, sets.Names())
	}

	return words, nil
}
