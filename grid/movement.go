package grid

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Connectivity selects which neighboring cells a single step can reach.
type Connectivity int

// Supported neighbor models.
const (
	FourConnected  Connectivity = 4
	EightConnected Connectivity = 8
)

// DiagonalCost is the cost of one diagonal step.
const DiagonalCost = math.Sqrt2

var (
	orthogonalOffsets = []Cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonalOffsets   = []Cell{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	eightOffsets      = append(append([]Cell{}, orthogonalOffsets...), diagonalOffsets...)
)

// ParseConnectivity accepts "4", "8", "four" or "eight".
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "four":
		return FourConnected, nil
	case "8", "eight":
		return EightConnected, nil
	}
	return 0, errors.Errorf("unknown connectivity %q, want 4 or 8", s)
}

func (c Connectivity) String() string {
	return strconv.Itoa(int(c)) + "-connected"
}

// Valid reports whether c is one of the supported models.
func (c Connectivity) Valid() bool {
	return c == FourConnected || c == EightConnected
}

// Movement is the movement model of a search, fixed for its duration.
type Movement struct {
	Connectivity Connectivity
	// CornerCutting allows a diagonal step even when one of the two
	// orthogonal cells it passes between is blocked.
	CornerCutting bool
}

// Step is a reachable neighbor and the cost of moving to it.
type Step struct {
	Cell Cell
	Cost float64
}

// Offsets returns the neighbor offsets in expansion order: orthogonal moves
// first, then diagonals.
func (m Movement) Offsets() []Cell {
	if m.Connectivity == EightConnected {
		return eightOffsets
	}
	return orthogonalOffsets
}

// Neighbors lists the free cells reachable from c in one step, in Offsets order.
func (m Movement) Neighbors(g *Grid, c Cell) []Step {
	offsets := m.Offsets()
	steps := make([]Step, 0, len(offsets))
	for _, offset := range offsets {
		next := c.Add(offset)
		if !m.Legal(g, c, next) {
			continue
		}
		steps = append(steps, Step{Cell: next, Cost: stepCost(offset)})
	}
	return steps
}

// Legal reports whether a single step from -> to is allowed on g.
func (m Movement) Legal(g *Grid, from, to Cell) bool {
	if g.Blocked(from) || g.Blocked(to) {
		return false
	}
	d := to.Sub(from)
	dr, dc := abs(d.Row), abs(d.Col)
	switch {
	case dr+dc == 1:
		return true
	case dr == 1 && dc == 1 && m.Connectivity == EightConnected:
		if m.CornerCutting {
			return true
		}
		return g.Free(Cell{Row: to.Row, Col: from.Col}) && g.Free(Cell{Row: from.Row, Col: to.Col})
	}
	return false
}

// Heuristic is the admissible, consistent estimate for the model: Manhattan
// distance for 4-connected movement, Euclidean distance for 8-connected.
func (m Movement) Heuristic(a, b Cell) float64 {
	if m.Connectivity == EightConnected {
		return Euclidean(a, b)
	}
	return Manhattan(a, b)
}

// Manhattan returns |dr| + |dc|.
func Manhattan(a, b Cell) float64 {
	d := a.Sub(b)
	return float64(abs(d.Row) + abs(d.Col))
}

// Euclidean returns the straight-line distance between cell centres.
func Euclidean(a, b Cell) float64 {
	d := a.Sub(b)
	return math.Hypot(float64(d.Row), float64(d.Col))
}

func stepCost(offset Cell) float64 {
	if offset.Row != 0 && offset.Col != 0 {
		return DiagonalCost
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
