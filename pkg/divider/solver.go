package divider

import (
	"fmt"
	"log/slog"

	"github.com/ja7ad/divider/pkg/catalog"
)

// Solver runs design computations against catalog files with a fixed Config.
type Solver struct {
	cfg    *Config
	cache  *catalog.Cache
	logger *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithCache memoizes catalog loads across Compute calls.
func WithCache(c *catalog.Cache) Option {
	return func(s *Solver) { s.cache = c }
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSolver creates a solver with the given config merged over DefaultConfig.
func NewSolver(cfg *Config, opts ...Option) *Solver {
	s := &Solver{
		cfg:    merge(cfg),
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Config returns a copy of the effective configuration.
func (s *Solver) Config() Config { return *s.cfg }

// Rating resolves the wattage class for source: the configured one when set,
// otherwise the class named in the source.
func (s *Solver) Rating(source string) catalog.Rating {
	if s.cfg.Rating != catalog.Unknown {
		return s.cfg.Rating
	}
	return catalog.ClassifyRating(source)
}

// Compute loads the catalog at source, builds the goals for vin and returns
// at most Config.Limit choices ordered best first.
//
// Catalog and goal validation errors are returned as is. Finding nothing is
// not an error; Report.Status tells a plain "no solution" apart from an
// unclassified rating.
func (s *Solver) Compute(vin float64, source string) (*Report, error) {
	rating := s.Rating(source)

	set, err := s.load(source)
	if err != nil {
		return nil, err
	}

	goals, err := NewGoals(vin, s.cfg.V2Hi, s.cfg.V2Lo, rating.MilliWatts(), WithADC(s.cfg.ADCRef, s.cfg.ADCBits))
	if err != nil {
		return nil, err
	}
	s.logger.Debug("design goals", "source", source, "rating", rating, "goals", goals, "values", set.Len())

	all := FindChoices(goals, set)
	r := &Report{
		Source:  source,
		Rating:  rating,
		Goals:   goals,
		Catalog: set.Len(),
		Pairs:   set.Len() * set.Len(),
		Choices: Top(all, s.cfg.Limit),
		All:     all,
	}

	switch {
	case goals.Unclassified():
		r.Status = StatusUnclassified
		s.logger.Warn("unclassified resistor rating, every power check fails", "source", source)
	case len(all) == 0:
		r.Status = StatusNoSolution
	default:
		r.Status = StatusOK
	}

	s.logger.Debug("choices", "qualified", len(all), "returned", len(r.Choices), "status", r.Status)
	return r, nil
}

func (s *Solver) load(source string) (catalog.Set, error) {
	if s.cache == nil {
		set, err := catalog.Load(source)
		if err != nil {
			return catalog.Set{}, fmt.Errorf("load catalog: %w", err)
		}
		return set, nil
	}

	set, err := s.cache.Load(source)
	if err != nil {
		return catalog.Set{}, fmt.Errorf("load catalog: %w", err)
	}
	s.logger.Debug("catalog cache", "source", source, "entries", s.cache.Len())
	return set, nil
}

// Compute is the one-shot form of Solver.Compute.
func Compute(vin float64, source string, cfg *Config) (*Report, error) {
	return NewSolver(cfg).Compute(vin, source)
}
