package cli

import (
	"encoding/json"
	"math/rand"

	"github.com/beka-birhanu/maze-planner/maze"
	"github.com/spf13/cobra"
)

// sampleResult is the record printed for sampled road cells.
type sampleResult struct {
	Roads []maze.Position `json:"roads"`
}

func newSampleCommand() *cobra.Command {
	var (
		mazePath string
		count    int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample random road cells from a persisted maze",
		Long: `Load a persisted grid file and print up to the requested number of
distinct road coordinates, drawn uniformly. Useful for picking spawn or
loot cells.`,
		Example: `  maze-planner sample --maze maze.json --count 3 --seed 42`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := maze.ReadFile(mazePath)
			if err != nil {
				return err
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			roads := maze.SampleRoads(grid, count, rng)
			return json.NewEncoder(cmd.OutOrStdout()).Encode(sampleResult{Roads: roads})
		},
	}

	cmd.Flags().StringVar(&mazePath, "maze", defaultMazeFile, "path to the persisted grid file")
	cmd.Flags().IntVar(&count, "count", 1, "number of road cells to sample")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for a reproducible draw")

	return cmd
}
