package generate

import (
	"errors"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Sentinel errors.
var (
	ErrNoStartRule    = errors.New("generate: grammar has no rules")
	ErrNoMatchingRule = errors.New("generate: no rule matches nonterminal")
	ErrStepLimit      = errors.New("generate: step limit exceeded")
)

// DefaultMaxSteps bounds the number of nonterminal replacements.
const DefaultMaxSteps = 10000

// Option configures Generate.
type Option func(*options)

type options struct {
	rng      *rand.Rand
	maxSteps int
	log      logrus.FieldLogger
}

func newOptions(opts ...Option) options {
	o := options{
		maxSteps: DefaultMaxSteps,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(1))
	}

	return o
}

// WithSeed seeds the generator driving rule choice and rewiring.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithMaxSteps bounds the number of replacements. Panics if n < 1.
func WithMaxSteps(n int) Option {
	if n < 1 {
		panic("generate: WithMaxSteps(n<1)")
	}
	return func(o *options) { o.maxSteps = n }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("generate: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}
