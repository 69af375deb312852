package grid

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrMalformedMap is returned for map files that cannot be turned into a grid.
var ErrMalformedMap = errors.New("malformed map")

// Map symbols. Start and goal markers are free cells.
const (
	SymbolFree       = '.'
	SymbolBlocked    = '#'
	SymbolStart      = 'S'
	SymbolGoal       = 'G'
	SymbolPath       = '*'
	symbolFreeAlt    = '0'
	symbolBlockedAlt = '1'
)

// Map is a grid plus whatever a map file says about planning on it.
type Map struct {
	Name  string
	Grid  *Grid
	Start *Cell
	Goal  *Cell
	// Connectivity is zero when the file leaves it to the caller.
	Connectivity Connectivity
	Frame        Frame
}

type mapFile struct {
	Name         string   `yaml:"name"`
	Resolution   float64  `yaml:"resolution"`
	Origin       point    `yaml:"origin"`
	Connectivity int      `yaml:"connectivity"`
	Start        *Cell    `yaml:"start"`
	Goal         *Cell    `yaml:"goal"`
	Rows         []string `yaml:"rows"`
}

type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadMap reads a map from disk. Files ending in .yaml or .yml are decoded
// with DecodeYAML, anything else with ParseText.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading map")
	}
	var m *Map
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err = DecodeYAML(bytes.NewReader(data))
	default:
		m, err = ParseText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "map %s", path)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// DecodeYAML reads a YAML map document.
func DecodeYAML(r io.Reader) (*Map, error) {
	var file mapFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrapf(ErrMalformedMap, "yaml: %v", err)
	}

	m, err := parseRows(file.Rows)
	if err != nil {
		return nil, err
	}
	m.Name = file.Name
	if file.Start != nil {
		m.Start = file.Start
	}
	if file.Goal != nil {
		m.Goal = file.Goal
	}
	if file.Connectivity != 0 {
		m.Connectivity = Connectivity(file.Connectivity)
		if !m.Connectivity.Valid() {
			return nil, errors.Wrapf(ErrMalformedMap, "connectivity %d, want 4 or 8", file.Connectivity)
		}
	}
	if file.Resolution != 0 {
		frame, err := NewFrame(r2.Point{X: file.Origin.X, Y: file.Origin.Y}, file.Resolution)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedMap, err.Error())
		}
		m.Frame = frame
	} else {
		m.Frame.Origin = r2.Point{X: file.Origin.X, Y: file.Origin.Y}
	}
	return m, nil
}

// ParseText reads a plain text map, one line per row. '.' or '0' is free,
// '#' or '1' is blocked, 'S' and 'G' mark free start and goal cells. Blank
// lines are skipped.
func ParseText(r io.Reader) (*Map, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading map")
	}
	return parseRows(rows)
}

func parseRows(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMalformedMap, "no rows")
	}
	m := &Map{Frame: Frame{Resolution: DefaultResolution}}
	flags := make([][]bool, len(rows))
	for r, row := range rows {
		flags[r] = make([]bool, 0, len(row))
		for c, symbol := range []rune(row) {
			here := Cell{Row: r, Col: c}
			switch symbol {
			case SymbolFree, symbolFreeAlt:
				flags[r] = append(flags[r], false)
			case SymbolBlocked, symbolBlockedAlt:
				flags[r] = append(flags[r], true)
			case SymbolStart:
				if m.Start != nil {
					return nil, errors.Wrapf(ErrMalformedMap, "second start marker at %v", here)
				}
				m.Start = &here
				flags[r] = append(flags[r], false)
			case SymbolGoal:
				if m.Goal != nil {
					return nil, errors.Wrapf(ErrMalformedMap, "second goal marker at %v", here)
				}
				m.Goal = &here
				flags[r] = append(flags[r], false)
			default:
				return nil, errors.Wrapf(ErrMalformedMap, "unknown symbol %q at %v", symbol, here)
			}
		}
	}
	g, err := FromRows(flags)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedMap, err.Error())
	}
	m.Grid = g
	return m, nil
}
