package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/internal/render"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [START END]",
		Short: "Export the word graph",
		Long:  `Prints statistics of the built graph, or a Mermaid diagram (graph LR). With START and END the shortest ladder between them is highlighted.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if format != "stats" && format != "mermaid" {
				return fmt.Errorf("unknown format %q (want stats or mermaid)", format)
			}

			s, _, err := loadSolver(cmd)
			if err != nil {
				return err
			}
			g := s.Graph()

			if format == "stats" {
				fmt.Fprintf(cmd.OutOrStdout(), "strategy:   %s\n", s.Strategy())
				fmt.Fprint(cmd.OutOrStdout(), render.Stats(g.Stats()))
				comps, err := bfs.ConnectedComponents(g)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), render.Components(comps))
				return nil
			}

			var highlight []string
			if len(args) == 2 {
				p, err := s.FindShortestPathContext(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				highlight = p
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Mermaid(g, highlight))

			return nil
		},
	}
	cmd.Flags().String("format", "stats", "Output format: stats or mermaid")

	return cmd
}
