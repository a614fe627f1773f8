// SPDX-License-Identifier: MIT

// Package operator: functional configuration of the numeric and concurrency
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - NewOptions, which gathers and validates the configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Options fields are unexported; public APIs consume ...Option.
//   - Invalid numeric policy is a caller error returned by NewOptions
//     (ErrToleranceConfiguration), never a panic and never deferred into
//     later arithmetic.
//
// Notes:
//   - Options is also the arithmetic context: o.Add, o.Mul, o.Equal, ... use
//     o's tolerance, worker count and logger. Package-level functions and Sum
//     methods use the defaults below.
package operator

import (
	"runtime"

	"github.com/go-logr/logr"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the cleaning threshold. A merged coefficient c
	// built from contributions c₁..cₖ is dropped when
	//	|c| <= tol · max(1, Σ|cᵢ|)
	// so the floor is absolute for small magnitudes and relative for large ones.
	DefaultTolerance = 1e-12

	// DefaultParallelThreshold is the number of term products |A|·|B| from
	// which Mul fans out across workers.
	DefaultParallelThreshold = 4096
)

// DefaultWorkers returns the worker count used when none is configured.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// ---------- Public option type (functional) ----------

// Option mutates internal options. Options are applied in order;
// last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// The zero value is usable: exact arithmetic (tol = 0), serial, discarding
// logger.
type Options struct {
	tol       float64     // >= 0; DefaultTolerance
	workers   int         // >= 1; DefaultWorkers()
	threshold int         // >= 0; DefaultParallelThreshold
	log       logr.Logger // logr.Discard()
}

// WithTolerance sets the cleaning/comparison tolerance.
// The value is validated by NewOptions: negative or non-finite tolerances
// yield ErrToleranceConfiguration.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithExactArithmetic sets tol = 0: only coefficients that cancel exactly
// are dropped, and Equal degenerates to exact comparison.
func WithExactArithmetic() Option {
	return func(o *Options) { o.tol = 0 }
}

// WithWorkers sets the number of goroutines used by the product kernel.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithSerial forces single-goroutine execution.
func WithSerial() Option {
	return func(o *Options) { o.workers = 1 }
}

// WithParallelThreshold sets the minimum number of term products for which
// Mul fans out. 0 means "always when workers > 1".
func WithParallelThreshold(n int) Option {
	return func(o *Options) { o.threshold = n }
}

// WithLogger attaches a structured logger. Kernels log at V(1) (dispatch)
// and V(2) (merge statistics).
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.log = l }
}

// NewOptions applies opts over the defaults and validates the result.
//
// Errors:
//   - ErrToleranceConfiguration for a negative, NaN or Inf tolerance.
//   - ErrWorkerConfiguration for workers < 1 or a negative threshold.
func NewOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}
	if err := ValidateTolerance(o.tol); err != nil {
		return Options{}, operatorErrorf("NewOptions", err)
	}
	if err := validateWorkers(o.workers, o.threshold); err != nil {
		return Options{}, operatorErrorf("NewOptions", err)
	}

	return o, nil
}

// MustOptions is NewOptions that panics on error. Intended for literals.
func MustOptions(opts ...Option) Options {
	o, err := NewOptions(opts...)
	if err != nil {
		panic(err)
	}

	return o
}

func defaultOptions() Options {
	return Options{
		tol:       DefaultTolerance,
		workers:   DefaultWorkers(),
		threshold: DefaultParallelThreshold,
		log:       logr.Discard(),
	}
}

// Tolerance returns the configured tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// Workers returns the configured worker count (0 on the zero value).
func (o Options) Workers() int { return o.workers }

// ParallelThreshold returns the configured fan-out threshold.
func (o Options) ParallelThreshold() int { return o.threshold }

// Logger returns the configured logger.
func (o Options) Logger() logr.Logger { return o.log }
