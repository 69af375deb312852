package gridplanner

import (
	"go.uber.org/zap"

	"github.com/pdrpinto/gridplanner/grid"
)

// Options defines parameters for planning.
type Options struct {
	Connectivity  grid.Connectivity
	CornerCutting bool
	// MaxExpansions caps expanded cells per search. Zero means no cap.
	MaxExpansions   int
	NumberOfWorkers int
	Logger          *zap.SugaredLogger
}

// Option is a function that modifies Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Connectivity:    grid.EightConnected,
		CornerCutting:   true,
		NumberOfWorkers: 1,
		Logger:          zap.NewNop().Sugar(),
	}
}

// WithConnectivity selects 4- or 8-connected movement.
func WithConnectivity(connectivity grid.Connectivity) Option {
	return func(options *Options) { options.Connectivity = connectivity }
}

// WithoutCornerCutting forbids diagonal steps past a blocked orthogonal cell.
func WithoutCornerCutting() Option {
	return func(options *Options) { options.CornerCutting = false }
}

// WithMaxExpansions bounds each search. Hitting the bound fails with
// ErrSearchBudgetExhausted.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// WithWorkers spreads heuristic evaluation over n goroutines. Paths are the
// same for any n.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger sets the logger plan outcomes are written to at debug level.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}
