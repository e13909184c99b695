// Package planner computes incremental pathfinding steps for an agent
// moving through a maze grid. Each call runs one A* search and returns only
// the next cell to move into, so callers can replan cheaply every tick.
package planner

import (
	"container/heap"

	"github.com/beka-birhanu/maze-planner/maze"
)

// steps are the 4-neighborhood moves; diagonal movement is not supported.
var steps = []maze.Position{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// node is an entry on the A* frontier.
type node struct {
	pos   maze.Position
	g     int // cost from start
	f     int // g plus Manhattan heuristic to goal
	index int // index in the heap
}

// frontier implements heap.Interface ordered by f ascending, ties broken by
// smaller g.
type frontier []*node

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].g < q[j].g
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x interface{}) {
	n := x.(*node)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[0 : n-1]
	return item
}

// NextStep returns the single next cell for an agent at start moving toward
// goal over the Road cells of grid, using A* with unit edge costs and a
// Manhattan heuristic.
//
// It degrades to returning start unchanged when start equals goal, when
// either coordinate is out of bounds, or when start sits on a Wall. When the
// goal is unreachable it falls back to the explored coordinate with the
// smallest f-score and steps toward that instead, so callers always get a
// usable move. It never returns an error; hosts are expected to reject
// malformed input before calling.
func NextStep(grid maze.Grid, start, goal maze.Position) maze.Position {
	if start == goal {
		return start
	}
	if !grid.InBounds(start) || !grid.InBounds(goal) {
		return start
	}
	if grid.At(start) == maze.Wall {
		return start
	}

	gScore := map[maze.Position]int{start: 0}
	fScore := map[maze.Position]int{start: manhattan(start, goal)}
	came := make(map[maze.Position]maze.Position)
	// Insertion order of scored coordinates, kept so the unreachable-goal
	// fallback breaks ties deterministically.
	order := []maze.Position{start}

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &node{pos: start, g: 0, f: fScore[start]})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if cur.pos == goal {
			break
		}

		for _, step := range steps {
			next := maze.Position{Row: cur.pos.Row + step.Row, Col: cur.pos.Col + step.Col}
			if !grid.InBounds(next) || grid.At(next) == maze.Wall {
				continue
			}

			tentative := gScore[cur.pos] + 1
			if old, seen := gScore[next]; seen && tentative >= old {
				continue
			}
			if _, seen := gScore[next]; !seen {
				order = append(order, next)
			}
			came[next] = cur.pos
			gScore[next] = tentative
			fScore[next] = tentative + manhattan(next, goal)
			heap.Push(open, &node{pos: next, g: tentative, f: fScore[next]})
		}
	}

	target := goal
	if _, reached := came[target]; !reached {
		// Best-effort fallback: head for the explored coordinate with the
		// smallest f-score instead of refusing to move.
		best := start
		bestF := int(^uint(0) >> 1)
		for _, p := range order {
			if f := fScore[p]; f < bestF {
				bestF = f
				best = p
			}
		}
		if best == start {
			return start
		}
		target = best
	}

	// Walk the predecessor chain back until the node adjacent to start.
	step := target
	for {
		parent, ok := came[step]
		if !ok || parent == start {
			break
		}
		step = parent
	}
	return step
}

// manhattan is the L1 distance between two grid positions.
func manhattan(a, b maze.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
