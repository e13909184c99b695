// Package cli implements the maze-planner command surface: file-mode maze
// generation and step planning, plus the REST serving host.
package cli

import (
	"os"

	"github.com/beka-birhanu/maze-planner/maze"
	"github.com/spf13/cobra"
)

const defaultMazeFile = "maze.json"

// Execute runs the root command.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "maze-planner",
		Short: "Generate single-exit mazes and plan agent steps through them",
		Long: `maze-planner procedurally builds rectangular grid mazes with a single
guaranteed boundary exit, and computes incremental A* pathfinding steps for
an agent moving through such a maze.

Run without a subcommand it generates one maze with default parameters and
writes it to maze.json.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default run: one maze with default parameters.
			return generateMaze(cmd.OutOrStdout(), defaultMazeFile,
				maze.DefaultSize, maze.DefaultSize, nil, maze.ExitSideRandom, maze.DefaultLoopDensity)
		},
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newNextStepCommand())
	rootCmd.AddCommand(newSampleCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
