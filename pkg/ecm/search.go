// Package ecm implements Lenstra's elliptic-curve factorization method.
//
// Each trial picks a random curve y^2 = x^3 + a*x + 1 modulo N through the
// point (0, 1) and multiplies that point by a smooth scalar. Whenever a slope
// denominator shares a factor with N the group law breaks down, and the gcd
// it reports is a factor of N.
package ecm

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Caqil/lenstra-ecm/internal/validation"
	"github.com/Caqil/lenstra-ecm/pkg/curve"
	"github.com/Caqil/lenstra-ecm/pkg/logger"
	"github.com/Caqil/lenstra-ecm/pkg/rand"
)

// maxCurveAttempts bounds the resampling of a singular curve parameter
const maxCurveAttempts = 1000

// Result describes a successful search
type Result struct {
	// Factor is a proper divisor of N, 1 < Factor < N
	Factor *big.Int

	// Cofactor is N / Factor
	Cofactor *big.Int

	// CurveParam is the a of the curve that revealed the factor
	CurveParam *big.Int

	// Trial is the 1-based index of the winning trial
	Trial int

	// TrialsRun counts the trials started before the search stopped
	TrialsRun int
}

// SourceFactory returns the random source owned by one worker
type SourceFactory func(worker int) (rand.Source, error)

// Searcher runs trials according to a Config
type Searcher struct {
	cfg       Config
	newSource SourceFactory
	shared    bool
	log       *logger.Logger
}

// Option configures a Searcher
type Option func(*Searcher)

// WithSource makes every trial draw curve parameters from src. Only valid
// with a single worker.
func WithSource(src rand.Source) Option {
	return func(s *Searcher) {
		s.newSource = func(int) (rand.Source, error) { return src, nil }
		s.shared = true
	}
}

// WithSourceFactory gives each worker the source returned by f
func WithSourceFactory(f SourceFactory) Option {
	return func(s *Searcher) {
		s.newSource = f
		s.shared = false
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSearcher creates a Searcher. A nil cfg means DefaultConfig().
func NewSearcher(cfg *Config, opts ...Option) (*Searcher, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Searcher{
		cfg: *cfg,
		log: logger.Nop(),
	}
	s.newSource = s.defaultSource

	for _, opt := range opts {
		opt(s)
	}

	if s.shared && s.cfg.Workers > 1 {
		return nil, ErrSharedSource
	}

	return s, nil
}

func (s *Searcher) defaultSource(worker int) (rand.Source, error) {
	if len(s.cfg.Seed) == 0 {
		return rand.NewCryptoSource(), nil
	}

	seed, err := rand.DeriveSeed(s.cfg.Seed, worker)
	if err != nil {
		return nil, err
	}
	return rand.NewSeededSource(seed)
}

// Factor runs a sequential search on n with the given bound and number of
// trials, drawing curves from crypto/rand. found is false when every trial
// finished without revealing a proper factor.
func Factor(n *big.Int, bound, trials int) (factor *big.Int, found bool, err error) {
	s, err := NewSearcher(&Config{
		Bound:    bound,
		Trials:   trials,
		Strategy: StrategyRepeatedAddition,
		Workers:  1,
	})
	if err != nil {
		return nil, false, err
	}

	res, found, err := s.Factor(context.Background(), n)
	if err != nil || !found {
		return nil, found, err
	}
	return res.Factor, true, nil
}

// Factor searches for a proper factor of n. It returns found == false with a
// nil error when all trials are exhausted; errors are reserved for invalid
// input, random source failures and cancellation.
func (s *Searcher) Factor(ctx context.Context, n *big.Int) (*Result, bool, error) {
	if err := validation.ValidateModulus(n); err != nil {
		return nil, false, err
	}

	// Curve parameters are drawn from [2, n), which is empty for n = 2
	if n.Cmp(big.NewInt(3)) < 0 {
		return nil, false, nil
	}

	log := s.log.With().Str("n", n.String()).Str("strategy", s.cfg.Strategy.String()).Logger()
	start := time.Now()

	var (
		res *Result
		err error
	)
	if s.cfg.Workers == 1 {
		res, err = s.sequential(ctx, n, log)
	} else {
		res, err = s.concurrent(ctx, n, log)
	}
	if err != nil {
		return nil, false, err
	}
	if res.Factor == nil {
		log.InfoEvent().Int("trials", res.TrialsRun).Dur("elapsed", time.Since(start)).Msg("no factor found")
		return nil, false, nil
	}

	log.InfoEvent().
		Str("factor", res.Factor.String()).
		Int("trial", res.Trial).
		Dur("elapsed", time.Since(start)).
		Msg("factor found")
	return res, true, nil
}

func (s *Searcher) sequential(ctx context.Context, n *big.Int, log *logger.Logger) (*Result, error) {
	src, err := s.newSource(0)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for t := 1; t <= s.cfg.Trials; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.TrialsRun = t

		d, a, err := s.trial(ctx, n, src, log.With().Int("trial", t).Logger())
		if err != nil {
			return nil, err
		}
		if d != nil {
			res.setFactor(n, d, a, t)
			return res, nil
		}
	}

	return res, nil
}

// concurrent hands trial numbers to the workers; the first proper factor
// cancels the others
func (s *Searcher) concurrent(ctx context.Context, n *big.Int, log *logger.Logger) (*Result, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		next    atomic.Int64
		started atomic.Int64
		once    sync.Once
		res     = &Result{}
	)

	for w := 0; w < s.cfg.Workers; w++ {
		w := w // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			src, err := s.newSource(w)
			if err != nil {
				return err
			}
			wlog := log.With().Int("worker", w).Logger()

			for {
				t := int(next.Add(1))
				if t > s.cfg.Trials {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				started.Add(1)

				d, a, err := s.trial(gctx, n, src, wlog.With().Int("trial", t).Logger())
				if err != nil {
					return err
				}
				if d != nil {
					once.Do(func() { res.setFactor(n, d, a, t) })
					return errFactorFound
				}
			}
		})
	}

	err := g.Wait()
	res.TrialsRun = int(started.Load())

	switch {
	case errors.Is(err, errFactorFound):
		return res, nil
	case err != nil:
		return nil, err
	default:
		return res, nil
	}
}

func (r *Result) setFactor(n, d, a *big.Int, trial int) {
	r.Factor = d
	r.Cofactor = new(big.Int).Quo(n, d)
	r.CurveParam = a
	r.Trial = trial
}

// trial runs one curve. It returns the proper factor found, if any, along
// with the curve parameter used.
func (s *Searcher) trial(ctx context.Context, n *big.Int, src rand.Source, log *logger.Logger) (*big.Int, *big.Int, error) {
	c, err := pickCurve(n, src)
	if err != nil {
		return nil, nil, err
	}
	a := c.A.Value()
	log.DebugEvent().Str("a", a.String()).Msg("curve selected")

	var r curve.Result
	switch s.cfg.Strategy {
	case StrategyScalarMult:
		r, err = multiplyPrimePowers(ctx, c, s.cfg.Bound)
	default:
		r, err = repeatedAddition(ctx, c, s.cfg.Bound)
	}
	if err != nil {
		return nil, nil, err
	}

	if r.Outcome != curve.OutcomeDegenerate {
		log.Debug("curve exhausted")
		return nil, a, nil
	}
	if !r.IsProperFactor(n) {
		log.DebugEvent().Str("gcd", r.Factor.String()).Msg("trivial gcd, abandoning curve")
		return nil, a, nil
	}
	return r.Factor, a, nil
}

// pickCurve draws a from [2, n) until 4a^3 + 27 is coprime to n
func pickCurve(n *big.Int, src rand.Source) (*curve.Curve, error) {
	lo := big.NewInt(2)
	for i := 0; i < maxCurveAttempts; i++ {
		a, err := src.Int(lo, n)
		if err != nil {
			return nil, err
		}

		c, err := curve.NewFromInt(a, n)
		if err != nil {
			return nil, err
		}
		ok, err := c.IsNonSingular()
		if err != nil {
			return nil, err
		}
		if ok {
			return c, nil
		}
	}
	return nil, ErrNoCurve
}

// repeatedAddition adds the base point to the working point b times for
// each b in [0, bound). It returns the first degenerate Result, or the
// final working point.
func repeatedAddition(ctx context.Context, c *curve.Curve, bound int) (curve.Result, error) {
	base := c.BasePoint()
	var work curve.Point = base

	for b := 0; b < bound; b++ {
		if work.IsInfinity() {
			break
		}
		if err := ctx.Err(); err != nil {
			return curve.Result{}, err
		}

		for i := 0; i < b && !work.IsInfinity(); i++ {
			r, err := c.Add(work, base)
			if err != nil {
				return curve.Result{}, err
			}
			if r.Outcome == curve.OutcomeDegenerate {
				return r, nil
			}
			work = r.Point
		}
	}

	if work.IsInfinity() {
		return curve.Result{Outcome: curve.OutcomeInfinity, Point: work}, nil
	}
	return curve.Result{Outcome: curve.OutcomeSuccess, Point: work}, nil
}

// multiplyPrimePowers multiplies the base point by the largest power of
// every prime <= bound
func multiplyPrimePowers(ctx context.Context, c *curve.Curve, bound int) (curve.Result, error) {
	var work curve.Point = c.BasePoint()

	for _, q := range primePowers(bound) {
		if err := ctx.Err(); err != nil {
			return curve.Result{}, err
		}

		r, err := c.ScalarMult(work, q)
		if err != nil {
			return curve.Result{}, err
		}
		if r.Outcome != curve.OutcomeSuccess {
			return r, nil
		}
		work = r.Point
	}

	return curve.Result{Outcome: curve.OutcomeSuccess, Point: work}, nil
}
