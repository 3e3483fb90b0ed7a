/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package entropy

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/ccattuto/ndd/internal/quad"
)

// varianceTolerance bounds how negative the posterior variance may go
// before rounding noise becomes a reported instability.
const varianceTolerance = 1e-10

// NSBOptions tune the integration over the concentration parameter. The
// zero value of any field selects its default; start from
// DefaultNSBOptions to adjust a single knob.
type NSBOptions struct {
	// LogAlphaMin and LogAlphaMax bound the initial scan window in
	// ln(alpha). Defaults -20 and 10.
	LogAlphaMin float64
	LogAlphaMax float64
	// ScanPoints is the number of window midpoints evaluated per range
	// finding pass. Default 100.
	ScanPoints int
	// WeightFloor is the normalized posterior weight below which scan
	// points are dropped when narrowing the window. Default 1e-30.
	WeightFloor float64
	// RelTol is the quadrature relative accuracy target. Default 1e-3.
	RelTol float64
	// MaxIntervals is the quadrature subdivision budget. Default 500.
	MaxIntervals int
	// Special overrides the gamma-family implementation.
	Special SpecialFunctions
}

// DefaultNSBOptions returns the settings NSB uses.
func DefaultNSBOptions() NSBOptions {
	return NSBOptions{
		LogAlphaMin:  -20,
		LogAlphaMax:  10,
		ScanPoints:   100,
		WeightFloor:  1e-30,
		RelTol:       1e-3,
		MaxIntervals: 500,
		Special:      defaultSpecial,
	}
}

func (o NSBOptions) normalized() (NSBOptions, error) {
	def := DefaultNSBOptions()
	if o.LogAlphaMin == 0 && o.LogAlphaMax == 0 {
		o.LogAlphaMin, o.LogAlphaMax = def.LogAlphaMin, def.LogAlphaMax
	}
	if o.ScanPoints == 0 {
		o.ScanPoints = def.ScanPoints
	}
	if o.WeightFloor == 0 {
		o.WeightFloor = def.WeightFloor
	}
	if o.RelTol == 0 {
		o.RelTol = def.RelTol
	}
	if o.MaxIntervals == 0 {
		o.MaxIntervals = def.MaxIntervals
	}
	if o.Special == nil {
		o.Special = defaultSpecial
	}
	switch {
	case o.LogAlphaMax <= o.LogAlphaMin:
		return o, fmt.Errorf("%w: log-alpha window [%v, %v]", ErrOptions, o.LogAlphaMin, o.LogAlphaMax)
	case o.ScanPoints < 2:
		return o, fmt.Errorf("%w: %d scan points", ErrOptions, o.ScanPoints)
	case o.WeightFloor <= 0 || o.WeightFloor >= 1:
		return o, fmt.Errorf("%w: weight floor %v", ErrOptions, o.WeightFloor)
	case o.RelTol <= 0:
		return o, fmt.Errorf("%w: relative tolerance %v", ErrOptions, o.RelTol)
	case o.MaxIntervals < 1:
		return o, fmt.Errorf("%w: interval budget %d", ErrOptions, o.MaxIntervals)
	}
	return o, nil
}

// logPrior is the log-density of the hyperprior on alpha, the derivative
// of the expected prior entropy. A negative argument to the log yields
// NaN and is left to propagate.
func (dp *posterior) logPrior(alpha float64) float64 {
	return math.Log(dp.kf*dp.fns.Trigamma(dp.kf*alpha+1) - dp.fns.Trigamma(alpha+1))
}

// logWeight is the unnormalized log posterior density of alpha.
func (dp *posterior) logWeight(alpha float64) float64 {
	return dp.logPrior(alpha) + dp.logMarginal(alpha)
}

// integrationContext pins down where the posterior mass of alpha lives:
// the integration bounds in ln(alpha) and the rescaling offset that keeps
// the integrands within floating-point range.
type integrationContext struct {
	logLo           float64
	logHi           float64
	alphaMode       float64
	logWeightAtMode float64
}

func scanLogWeight(dp *posterior, lo, hi float64, n int) (xs, logws []float64) {
	xs = make([]float64, n)
	logws = make([]float64, n)
	step := (hi - lo) / float64(n)
	for j := range xs {
		xs[j] = lo + (float64(j)+0.5)*step
		logws[j] = dp.logWeight(math.Exp(xs[j]))
	}
	return xs, logws
}

// findIntegrationRange locates the posterior mode of alpha and narrows
// the scan window to the region holding essentially all posterior mass.
// Two passes: a wide scan over the configured window, then a refining
// scan over the narrowed one. Within each pass the window shrinks to the
// outermost sampled points whose weight, rescaled by the mode, stays
// above the floor; a lone surviving point keeps its own sub-interval.
func findIntegrationRange(dp *posterior, opts NSBOptions) (integrationContext, error) {
	lo, hi := opts.LogAlphaMin, opts.LogAlphaMax
	var ctx integrationContext
	for pass := 0; pass < 2; pass++ {
		xs, logws := scanLogWeight(dp, lo, hi, opts.ScanPoints)
		mode := -1
		for j, lw := range logws {
			if math.IsNaN(lw) || math.IsInf(lw, 0) {
				continue
			}
			if mode < 0 || lw > logws[mode] {
				mode = j
			}
		}
		if mode < 0 {
			return integrationContext{}, fmt.Errorf("%w: scanned log-alpha in [%v, %v]", ErrNoFiniteWeight, lo, hi)
		}
		ctx.alphaMode = math.Exp(xs[mode])
		ctx.logWeightAtMode = logws[mode]

		first, last := -1, -1
		for j, lw := range logws {
			if math.Exp(lw-ctx.logWeightAtMode) > opts.WeightFloor {
				if first < 0 {
					first = j
				}
				last = j
			}
		}
		step := (hi - lo) / float64(opts.ScanPoints)
		if first == last {
			lo, hi = xs[first]-step/2, xs[first]+step/2
		} else {
			lo, hi = xs[first], xs[last]
		}
	}
	ctx.logLo, ctx.logHi = lo, hi
	return ctx, nil
}

// nsbIntegrands returns the three integrands of the posterior mixture
// over x = ln(alpha): normalization, mean entropy and second moment. All
// three carry the e^x Jacobian and are rescaled by the weight at the
// mode so their peak is order one.
func nsbIntegrands(dp *posterior, ctx integrationContext) (norm, mean, second func(float64) float64) {
	offset := ctx.logWeightAtMode
	norm = func(x float64) float64 {
		alpha := math.Exp(x)
		return math.Exp(dp.logWeight(alpha)-offset) * alpha
	}
	mean = func(x float64) float64 {
		alpha := math.Exp(x)
		return math.Exp(dp.logWeight(alpha)-offset) * dp.meanEntropy(alpha) * alpha
	}
	second = func(x float64) float64 {
		alpha := math.Exp(x)
		h := dp.meanEntropy(alpha)
		return math.Exp(dp.logWeight(alpha)-offset) * h * h * alpha
	}
	return norm, mean, second
}

func nsbIntegrate(dp *posterior, ctx integrationContext, opts NSBOptions) (estimate, stderr float64, err error) {
	norm, mean, second := nsbIntegrands(dp, ctx)
	qopts := quad.Options{RelTol: opts.RelTol, MaxIntervals: opts.MaxIntervals}
	z := quad.Adaptive(norm, ctx.logLo, ctx.logHi, qopts)
	m1 := quad.Adaptive(mean, ctx.logLo, ctx.logHi, qopts)
	m2 := quad.Adaptive(second, ctx.logLo, ctx.logHi, qopts)

	estimate = m1.Value / z.Value
	variance := m2.Value/z.Value - estimate*estimate
	if math.IsNaN(estimate) || math.IsNaN(variance) {
		return 0, 0, fmt.Errorf("%w: integrating near alpha %v over log-alpha [%v, %v]",
			ErrNaN, ctx.alphaMode, ctx.logLo, ctx.logHi)
	}
	if variance < 0 {
		if variance < -varianceTolerance {
			return estimate, 0, fmt.Errorf("%w: got %v", ErrNegativeVariance, variance)
		}
		variance = 0
	}
	stderr = math.Sqrt(variance)
	if stages := unconverged(z, m1, m2); stages != "" {
		return estimate, stderr, fmt.Errorf("%w: %s", ErrNonConvergence, stages)
	}
	return estimate, stderr, nil
}

func unconverged(z, m1, m2 quad.Result) string {
	var stages []string
	if !z.Converged {
		stages = append(stages, "normalization")
	}
	if !m1.Converged {
		stages = append(stages, "posterior mean")
	}
	if !m2.Converged {
		stages = append(stages, "second moment")
	}
	return strings.Join(stages, ", ")
}

// NSB returns the Nemenman-Shafee-Bialek entropy estimate together with
// its Bayesian standard error. The estimate averages the Dirichlet
// posterior mean entropy over the data-driven posterior of the
// concentration parameter; the standard error is the spread of the same
// mixture. On ErrNonConvergence the best estimate reached is still
// returned alongside the error.
func NSB[T constraints.Integer](counts []T, k int64) (estimate, stderr float64, err error) {
	return NSBWithOptions(counts, k, DefaultNSBOptions())
}

// NSBWithOptions is NSB with explicit integration settings.
func NSBWithOptions[T constraints.Integer](counts []T, k int64, opts NSBOptions) (estimate, stderr float64, err error) {
	opts, err = opts.normalized()
	if err != nil {
		return 0, 0, err
	}
	mult, err := NewMultiplicities(asCounts(counts), k)
	if err != nil {
		return 0, 0, err
	}
	if mult.K() == 1 {
		return 0, 0, nil
	}
	dp := newPosterior(mult, opts.Special)
	ctx, err := findIntegrationRange(dp, opts)
	if err != nil {
		return 0, 0, err
	}
	return nsbIntegrate(dp, ctx, opts)
}
