package cli

import (
	"encoding/json"
	"fmt"

	"github.com/beka-birhanu/maze-planner/maze"
	"github.com/beka-birhanu/maze-planner/planner"
	"github.com/spf13/cobra"
)

// nextStepResult is the record printed for a computed step.
type nextStepResult struct {
	Next maze.Position `json:"next"`
}

func newNextStepCommand() *cobra.Command {
	var (
		mazePath string
		from     []int
		to       []int
	)

	cmd := &cobra.Command{
		Use:   "next-step",
		Short: "Compute an agent's next move on a persisted maze",
		Long: `Load a persisted grid file, validate it, and run one A* query from the
start coordinate toward the goal. Only the next cell is printed, not the
full path; when the goal is unreachable the step heads for the closest
explored cell instead.`,
		Example: `  maze-planner next-step --maze maze.json --from 1,1 --to 18,19`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseCoordinate("from", from)
			if err != nil {
				return err
			}
			goal, err := parseCoordinate("to", to)
			if err != nil {
				return err
			}

			grid, err := maze.ReadFile(mazePath)
			if err != nil {
				return err
			}
			if !grid.InBounds(start) {
				return fmt.Errorf("--from (%d,%d) is outside the %dx%d grid", start.Row, start.Col, grid.Height(), grid.Width())
			}
			if !grid.InBounds(goal) {
				return fmt.Errorf("--to (%d,%d) is outside the %dx%d grid", goal.Row, goal.Col, grid.Height(), grid.Width())
			}

			next := planner.NextStep(grid, start, goal)
			return json.NewEncoder(cmd.OutOrStdout()).Encode(nextStepResult{Next: next})
		},
	}

	cmd.Flags().StringVar(&mazePath, "maze", defaultMazeFile, "path to the persisted grid file")
	cmd.Flags().IntSliceVar(&from, "from", nil, "start coordinate as row,col")
	cmd.Flags().IntSliceVar(&to, "to", nil, "goal coordinate as row,col")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// parseCoordinate converts a two-element row,col flag value into a Position.
func parseCoordinate(name string, raw []int) (maze.Position, error) {
	if len(raw) != 2 {
		return maze.Position{}, fmt.Errorf("--%s wants exactly two integers as row,col, got %d", name, len(raw))
	}
	return maze.Position{Row: raw[0], Col: raw[1]}, nil
}
