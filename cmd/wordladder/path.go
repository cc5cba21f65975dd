package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/render"
	"github.com/katalvlaran/wordladder/ladder"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path START END",
		Short: "Print the shortest ladder between two words",
		Long:  `Builds the graph and prints a shortest transformation path from START to END together with its length. Exits non-zero when no path exists.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end := args[0], args[1]
			s, logger, err := loadSolver(cmd)
			if err != nil {
				return err
			}

			p, err := s.FindShortestPathContext(cmd.Context(), start, end)
			if errors.Is(err, ladder.ErrNoPath) {
				fmt.Fprintf(cmd.OutOrStdout(), "Start word: %q, End word: %q has no transformation path\n", start, end)
				return err
			}
			if err != nil {
				return err
			}

			logger.Info("path found", "start", start, "end", end, "length", p.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "Start word: %q, End word: %q has transformation path: %q and length=%d\n",
				start, end, render.Path(p), p.Len())

			return nil
		},
	}
}
