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

package divergence

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"

	"github.com/ccattuto/ndd/entropy"
)

// pmfTolerance is how far the reference pmf may sum from one.
const pmfTolerance = 1e-9

// KullbackLeibler returns a Bayesian estimate of the Kullback-Leibler
// divergence of the distribution behind counts from the reference pmf qk,
// computed as estimated cross-entropy minus estimated entropy under a
// symmetric Dirichlet prior with concentration alpha. The alphabet is the
// one qk describes, so len(counts) must equal len(qk).
func KullbackLeibler[T constraints.Integer](counts []T, qk []float64, alpha float64) (float64, error) {
	cc, err := checkPair(asCounts(counts), qk)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return 0, fmt.Errorf("%w: got %v", entropy.ErrNonPositiveAlpha, alpha)
	}

	k := float64(len(qk))
	var n float64
	for _, c := range cc {
		n += float64(c)
	}
	denom := n + alpha*k

	var cross float64
	for i, c := range cc {
		p := (float64(c) + alpha) / denom
		cross -= p * math.Log(qk[i])
	}

	h, err := entropy.Dirichlet(cc, int64(len(qk)), alpha)
	if err != nil {
		return 0, err
	}
	kl := cross - h
	if math.IsNaN(kl) {
		return 0, fmt.Errorf("%w: kullback-leibler divergence", entropy.ErrNaN)
	}
	return kl, nil
}

// KullbackLeiblerPlugin returns the maximum-likelihood Kullback-Leibler
// divergence of the empirical distribution counts[i]/n from the reference
// pmf qk. At least one observation is required.
func KullbackLeiblerPlugin[T constraints.Integer](counts []T, qk []float64) (float64, error) {
	cc, err := checkPair(asCounts(counts), qk)
	if err != nil {
		return 0, err
	}
	var n float64
	for _, c := range cc {
		n += float64(c)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: no observations", entropy.ErrCounts)
	}

	var kl float64
	for i, c := range cc {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		kl += p * math.Log(p/qk[i])
	}
	if math.IsNaN(kl) {
		return 0, fmt.Errorf("%w: kullback-leibler divergence", entropy.ErrNaN)
	}
	return kl, nil
}

func checkPair(counts []int64, qk []float64) ([]int64, error) {
	if len(qk) == 0 {
		return nil, fmt.Errorf("%w: empty reference distribution", ErrShape)
	}
	if len(counts) != len(qk) {
		return nil, fmt.Errorf("%w: %d count bins against %d reference bins", ErrShape, len(counts), len(qk))
	}
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("%w: bin %d holds %d", entropy.ErrCounts, i, c)
		}
	}
	for i, q := range qk {
		if math.IsNaN(q) || q <= 0 {
			return nil, fmt.Errorf("%w: bin %d holds %v", ErrPMF, i, q)
		}
	}
	if sum := floats.Sum(qk); math.Abs(sum-1) > pmfTolerance {
		return nil, fmt.Errorf("%w: sums to %v", ErrPMF, sum)
	}
	return counts, nil
}
