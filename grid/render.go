package grid

import (
	"bufio"
	"io"
)

// Render writes g to w one row per line using the map symbols: obstacles as
// '#', free cells as '.', path cells as '*', and the path's first and last
// cells as 'S' and 'G'. Its output is readable by ParseText once the path
// markers are stripped.
func Render(w io.Writer, g *Grid, path Path) error {
	onPath := make(map[Cell]rune, len(path))
	for _, c := range path {
		onPath[c] = SymbolPath
	}
	if len(path) > 0 {
		onPath[path[len(path)-1]] = SymbolGoal
		onPath[path[0]] = SymbolStart
	}

	out := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			here := Cell{Row: r, Col: c}
			symbol := rune(SymbolFree)
			if g.Blocked(here) {
				symbol = SymbolBlocked
			}
			if marker, ok := onPath[here]; ok {
				symbol = marker
			}
			if _, err := out.WriteRune(symbol); err != nil {
				return err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
	return out.Flush()
}
