package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/kode4food/tabula/match"
)

type (
	// Config conveys the behavior of an indexed Table that one can configure
	// using Options. Options passed when a Table is constructed become its
	// defaults. Options passed to a query apply to that query alone
	Config struct {
		Columns    map[string]int
		Scorer     match.Scorer
		Logger     *slog.Logger
		Similarity float64
		WordsLeft  float64
		MaxMatches int
		Explicit   bool
		IgnoreCase bool
		Ordered    bool
		Convert    bool
		And        bool
	}

	// Option applies an option to a Config instance
	Option func(*Config) error
)

// Defaults
const (
	DefaultSimilarity = 0.6
	DefaultWordsLeft  = 0.4
)

// Error messages
var (
	ErrInvalidSimilarity = errors.New("similarity must be between 0 and 1")
	ErrInvalidWordsLeft  = errors.New("words left must be between 0 and 1")
	ErrInvalidMaxMatches = errors.New("max matches must not be negative")
)

// Defaults applies the default settings to a Config. It is always applied
// first by New, so there is rarely a reason to pass it explicitly
func Defaults(c *Config) error {
	c.Scorer = match.SequenceRatio
	c.Logger = slog.Default()
	c.Similarity = DefaultSimilarity
	c.WordsLeft = DefaultWordsLeft
	c.MaxMatches = 0
	c.Explicit = true
	c.IgnoreCase = false
	c.Ordered = true
	c.Convert = true
	c.And = false
	return nil
}

// New returns a Config with the defaults applied, followed by the provided
// Options in order
func New(o ...Option) (*Config, error) {
	c := &Config{}
	_ = Defaults(c)
	if err := c.Apply(o...); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply applies each Option in order, stopping at the first error
func (c *Config) Apply(o ...Option) error {
	for _, opt := range o {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy of the Config that shares nothing mutable with it
func (c *Config) Clone() *Config {
	res := *c
	res.Columns = maps.Clone(c.Columns)
	return &res
}

// Mode returns the comparison Mode selected by the Explicit and IgnoreCase
// settings
func (c *Config) Mode() match.Mode {
	return match.ModeOf(c.Explicit, c.IgnoreCase)
}

// WithColumns sets the column name to field position mapping of a Table
func WithColumns(cols map[string]int) Option {
	return func(c *Config) error {
		c.Columns = maps.Clone(cols)
		return nil
	}
}

// WithLogger sets the logger used for index lifecycle events
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			l = slog.Default()
		}
		c.Logger = l
		return nil
	}
}

// WithScorer sets the similarity Scorer used by fuzzy queries
func WithScorer(s match.Scorer) Option {
	return func(c *Config) error {
		if s == nil {
			s = match.SequenceRatio
		}
		c.Scorer = s
		return nil
	}
}

// Explicit selects equality (true) or substring (false) matching
func Explicit(explicit bool) Option {
	return func(c *Config) error {
		c.Explicit = explicit
		return nil
	}
}

// Contains is shorthand for Explicit(false)
func Contains(c *Config) error {
	c.Explicit = false
	return nil
}

// IgnoreCase case-folds both sides of a comparison
func IgnoreCase(ignore bool) Option {
	return func(c *Config) error {
		c.IgnoreCase = ignore
		return nil
	}
}

// Ordered sorts resulting row positions ascending before they are returned
// or materialized
func Ordered(ordered bool) Option {
	return func(c *Config) error {
		c.Ordered = ordered
		return nil
	}
}

// Convert wraps materialized rows in a new indexed Table
func Convert(convert bool) Option {
	return func(c *Config) error {
		c.Convert = convert
		return nil
	}
}

// And intersects per-keyword results instead of uniting them
func And(and bool) Option {
	return func(c *Config) error {
		c.And = and
		return nil
	}
}

// Similarity sets the cutoff that fuzzy matches must reach
func Similarity(s float64) Option {
	return func(c *Config) error {
		if !(s >= 0 && s <= 1) {
			return fmt.Errorf("%w: %v", ErrInvalidSimilarity, s)
		}
		c.Similarity = s
		return nil
	}
}

// WordsLeft sets the fraction of tokens that must survive filtering for an
// incomplete row search to proceed
func WordsLeft(w float64) Option {
	return func(c *Config) error {
		if !(w >= 0 && w <= 1) {
			return fmt.Errorf("%w: %v", ErrInvalidWordsLeft, w)
		}
		c.WordsLeft = w
		return nil
	}
}

// MaxMatches bounds how many fuzzy candidates a keyword may match. Zero
// means every distinct candidate
func MaxMatches(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidMaxMatches, n)
		}
		c.MaxMatches = n
		return nil
	}
}
