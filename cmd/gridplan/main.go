// Package main is the gridplan command: plan a route over an occupancy map
// and print it.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridplanner"
	"github.com/pdrpinto/gridplanner/grid"
	"github.com/pdrpinto/gridplanner/internal/logging"
)

const (
	// Flags.
	flagMap             = "map"
	flagStart           = "start"
	flagGoal            = "goal"
	flagConnectivity    = "connectivity"
	flagNoCornerCutting = "no-corner-cutting"
	flagMaxExpansions   = "max-expansions"
	flagWorkers         = "workers"
	flagWaypoints       = "waypoints"
	flagNoRender        = "no-render"
	flagDebug           = "debug"
)

// demoMap is the 5x5 field with two obstacles used when no map is given.
const demoMap = `
S....
.#...
.....
...#.
....G
`

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "gridplan",
		Usage:     "plan a minimum-cost route over an occupancy grid",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagMap,
				Aliases: []string{"m"},
				Usage:   "map file, .yaml/.yml or plain text; the built-in demo field when empty",
			},
			&cli.StringFlag{
				Name:  flagStart,
				Usage: "start cell as row,col; overrides the map",
			},
			&cli.StringFlag{
				Name:  flagGoal,
				Usage: "goal cell as row,col; overrides the map",
			},
			&cli.StringFlag{
				Name:  flagConnectivity,
				Usage: "4 or 8; defaults to the map's setting, then 8",
			},
			&cli.BoolFlag{
				Name:  flagNoCornerCutting,
				Usage: "forbid diagonal steps past a blocked cell",
			},
			&cli.IntFlag{
				Name:  flagMaxExpansions,
				Usage: "give up after this many expanded cells (0 for no limit)",
			},
			&cli.IntFlag{
				Name:  flagWorkers,
				Value: 1,
				Usage: "goroutines evaluating neighbors",
			},
			&cli.BoolFlag{
				Name:  flagWaypoints,
				Usage: "also print metric waypoints using the map's frame",
			},
			&cli.BoolFlag{
				Name:  flagNoRender,
				Usage: "do not draw the grid",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	logger, err := logging.NewLogger("gridplan", c.Bool(flagDebug))
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() { _ = logger.Sync() }()

	m, err := loadMap(c.String(flagMap))
	if err != nil {
		return err
	}
	start, goal, err := endpoints(c, m)
	if err != nil {
		return err
	}

	connectivity := m.Connectivity
	if c.IsSet(flagConnectivity) {
		if connectivity, err = grid.ParseConnectivity(c.String(flagConnectivity)); err != nil {
			return err
		}
	}
	if connectivity == 0 {
		connectivity = grid.EightConnected
	}

	options := []gridplanner.Option{
		gridplanner.WithConnectivity(connectivity),
		gridplanner.WithMaxExpansions(c.Int(flagMaxExpansions)),
		gridplanner.WithWorkers(c.Int(flagWorkers)),
		gridplanner.WithLogger(logger),
	}
	if c.Bool(flagNoCornerCutting) {
		options = append(options, gridplanner.WithoutCornerCutting())
	}
	planner, err := gridplanner.New(options...)
	if err != nil {
		return err
	}

	logger.Infow("planning", "map", m.Name, "rows", m.Grid.Rows(), "cols", m.Grid.Cols(),
		"obstacles", m.Grid.BlockedCount(), "start", start, "goal", goal, "connectivity", connectivity)
	plan, err := planner.Plan(c.Context, m.Grid, start, goal)
	if err != nil {
		return err
	}
	return report(c.App.Writer, logger, m, plan, !c.Bool(flagNoRender), c.Bool(flagWaypoints))
}

func loadMap(path string) (*grid.Map, error) {
	if path == "" {
		m, err := grid.ParseText(strings.NewReader(demoMap))
		if err != nil {
			return nil, err
		}
		m.Name = "demo"
		return m, nil
	}
	return grid.LoadMap(path)
}

func endpoints(c *cli.Context, m *grid.Map) (grid.Cell, grid.Cell, error) {
	start, err := endpoint(c, flagStart, m.Start)
	if err != nil {
		return grid.Cell{}, grid.Cell{}, err
	}
	goal, err := endpoint(c, flagGoal, m.Goal)
	if err != nil {
		return grid.Cell{}, grid.Cell{}, err
	}
	return start, goal, nil
}

func endpoint(c *cli.Context, flag string, fromMap *grid.Cell) (grid.Cell, error) {
	if c.IsSet(flag) {
		return grid.ParseCell(c.String(flag))
	}
	if fromMap == nil {
		return grid.Cell{}, errors.Errorf("no %s cell: pass --%s or mark it in the map", flag, flag)
	}
	return *fromMap, nil
}

func report(out io.Writer, logger *zap.SugaredLogger, m *grid.Map, plan gridplanner.Plan, render, waypoints bool) error {
	if !plan.Found() {
		logger.Warnw("no route", "expanded", plan.ExpandedNodes)
		_, err := fmt.Fprintln(out, "route: none")
		return err
	}

	if _, err := fmt.Fprintf(out, "route: %v\n", plan.Path); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "cost: %.4f (%.3f m)\n", plan.Cost, m.Frame.Meters(plan.Cost)); err != nil {
		return err
	}
	if waypoints {
		for _, p := range m.Frame.Waypoints(plan.Path) {
			if _, err := fmt.Fprintf(out, "waypoint: %.3f %.3f\n", p.X, p.Y); err != nil {
				return err
			}
		}
	}
	if render {
		return grid.Render(out, m.Grid, plan.Path)
	}
	return nil
}
