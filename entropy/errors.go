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

import "errors"

var (
	// ErrCounts reports an invalid counts vector: empty, a negative entry,
	// no observations where at least one is required, or a matrix entry
	// that is not a whole number.
	ErrCounts = errors.New("counts must be non-negative integers")

	// ErrAlphabetSize reports an alphabet size that is non-positive or
	// smaller than the number of observed bins.
	ErrAlphabetSize = errors.New("alphabet size must cover all observed bins")

	// ErrNonPositiveAlpha reports a concentration parameter outside the
	// domain of the Dirichlet prior.
	ErrNonPositiveAlpha = errors.New("concentration parameter must be positive")

	// ErrOptions reports integration settings that cannot define a scan,
	// such as an empty log-alpha window or a weight floor of one or more.
	ErrOptions = errors.New("invalid integration options")

	// ErrNoFiniteWeight reports that the posterior weight over the
	// concentration parameter is nowhere finite in the scan domain, so no
	// integration range exists.
	ErrNoFiniteWeight = errors.New("no finite posterior weight in the scan domain")

	// ErrNonConvergence reports that adaptive quadrature exhausted its
	// interval budget before reaching the requested tolerance. The
	// best-effort estimate and error bound are still returned.
	ErrNonConvergence = errors.New("quadrature did not converge")

	// ErrNegativeVariance reports a posterior variance below zero by more
	// than rounding noise.
	ErrNegativeVariance = errors.New("posterior variance is negative beyond rounding tolerance")

	// ErrNaN reports a result that is NaN.
	ErrNaN = errors.New("result is NaN")
)
