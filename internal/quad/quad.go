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

// Package quad integrates a function over a finite interval to a target
// relative accuracy by globally adaptive subdivision. Each subinterval is
// evaluated with a pair of fixed Gauss-Legendre rules and the interval
// with the largest disagreement between the two is bisected until the
// summed disagreement meets the tolerance or the interval budget runs
// out. The budget makes every call terminate.
package quad

import (
	"math"

	gonumquad "gonum.org/v1/gonum/integrate/quad"
)

const (
	defaultRelTol       = 1e-3
	defaultMaxIntervals = 500

	lowOrder  = 10
	highOrder = 21
)

// Options control the accuracy target and the subdivision budget. The
// zero value of a field selects its default.
type Options struct {
	// RelTol is the target relative accuracy. Default 1e-3.
	RelTol float64
	// AbsTol is the absolute accuracy floor, used when the integral value
	// is near zero. Default 0.
	AbsTol float64
	// MaxIntervals caps the number of subintervals. Default 500.
	MaxIntervals int
}

// Result reports the integral approximation together with the achieved
// error estimate. When Converged is false the budget was exhausted first
// and Value carries the best approximation reached.
type Result struct {
	Value     float64
	AbsErr    float64
	Intervals int
	Converged bool
}

type segment struct {
	a, b   float64
	value  float64
	absErr float64
}

func evalSegment(f func(float64) float64, a, b float64) segment {
	low := gonumquad.Fixed(f, a, b, lowOrder, gonumquad.Legendre{}, 0)
	high := gonumquad.Fixed(f, a, b, highOrder, gonumquad.Legendre{}, 0)
	return segment{a: a, b: b, value: high, absErr: math.Abs(high - low)}
}

// Adaptive approximates the integral of f over [a, b]. The interval must
// be ordered, a <= b; a zero-width interval integrates to zero.
func Adaptive(f func(float64) float64, a, b float64, opts Options) Result {
	if opts.RelTol == 0 {
		opts.RelTol = defaultRelTol
	}
	if opts.MaxIntervals == 0 {
		opts.MaxIntervals = defaultMaxIntervals
	}
	if a == b {
		return Result{Converged: true}
	}

	segs := []segment{evalSegment(f, a, b)}
	for {
		var value, absErr float64
		for _, s := range segs {
			value += s.value
			absErr += s.absErr
		}
		tol := opts.AbsTol
		if rt := opts.RelTol * math.Abs(value); rt > tol {
			tol = rt
		}
		if absErr <= tol {
			return Result{Value: value, AbsErr: absErr, Intervals: len(segs), Converged: true}
		}
		if len(segs) >= opts.MaxIntervals {
			return Result{Value: value, AbsErr: absErr, Intervals: len(segs)}
		}

		worst := 0
		for i := 1; i < len(segs); i++ {
			if segs[i].absErr > segs[worst].absErr {
				worst = i
			}
		}
		bisect := segs[worst]
		mid := 0.5 * (bisect.a + bisect.b)
		segs[worst] = evalSegment(f, bisect.a, mid)
		segs = append(segs, evalSegment(f, mid, bisect.b))
	}
}
