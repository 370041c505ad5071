package extract

import (
	"errors"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vrg/grammar"
	"github.com/katalvlaran/vrg/rule"
)

// Sentinel errors.
var (
	// ErrNoSubtree signals that no internal node is left to collapse. The
	// greedy driver treats it as normal termination.
	ErrNoSubtree = errors.New("extract: no subtree available")

	// ErrBoundaryMismatch indicates a rule whose LHS differs from the number
	// of boundary edges it was built from.
	ErrBoundaryMismatch = errors.New("extract: boundary count mismatch")

	// ErrMalformedTree indicates a tree that fails validation or whose
	// leaves differ from the graph's vertices.
	ErrMalformedTree = errors.New("extract: malformed tree")
)

// Defaults.
const (
	DefaultLambda = 4
	defaultSeed   = 1
)

// Option configures an extraction run.
type Option func(*options)

type options struct {
	lambda     int
	selection  grammar.Selection
	mode       rule.Mode
	rng        *rand.Rand
	name       string
	clustering string
	log        logrus.FieldLogger
	progress   func(float64)
}

func newOptions(opts ...Option) options {
	o := options{
		lambda:    DefaultLambda,
		selection: grammar.SelectRandom,
		mode:      rule.ModePart,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return o
}

// WithLambda sets the target cluster size. Panics if lambda < 1.
func WithLambda(lambda int) Option {
	if lambda < 1 {
		panic("extract: WithLambda(lambda<1)")
	}
	return func(o *options) { o.lambda = lambda }
}

// WithSelection sets the tie-break policy of the greedy driver.
func WithSelection(s grammar.Selection) Option {
	return func(o *options) { o.selection = s }
}

// WithMode sets the boundary information kept in rule right-hand sides.
func WithMode(m rule.Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithSeed seeds the generator used by random selection.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the generator used by random selection. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("extract: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithName sets the grammar name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithClustering records which clustering produced the tree.
func WithClustering(c string) Option {
	return func(o *options) { o.clustering = c }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("extract: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

// WithProgress registers an observer called after every recorded rule with
// the fraction of the initial active set consumed so far. Panics on nil.
func WithProgress(fn func(float64)) Option {
	if fn == nil {
		panic("extract: WithProgress(nil)")
	}
	return func(o *options) { o.progress = fn }
}
