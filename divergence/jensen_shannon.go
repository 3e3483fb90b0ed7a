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

// Package divergence estimates divergences between discrete distributions
// from counts, built on the entropy estimators: the Jensen-Shannon
// divergence among the distributions behind the rows of a counts matrix,
// and the Kullback-Leibler divergence of an observed distribution from a
// known reference. All results are in nats.
package divergence

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/ccattuto/ndd/entropy"
)

// JensenShannon returns the estimated Jensen-Shannon divergence among the
// distributions behind the rows of counts, using the NSB point estimate
// for every entropy term. Row r enters the mixture with weight
// proportional to its total number of observations.
func JensenShannon[T constraints.Integer](rows [][]T, k int64) (float64, error) {
	return JensenShannonWith(rows, k, entropy.NSBEstimator{})
}

// JensenShannonWith is JensenShannon with an explicit entropy estimator.
// The divergence is the estimated entropy of the pooled counts minus the
// weighted estimated entropies of the rows. Rows without observations
// carry zero weight and are skipped.
func JensenShannonWith[T constraints.Integer](rows [][]T, k int64, e entropy.Estimator) (float64, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("%w: no distributions", ErrShape)
	}
	nbins := len(rows[0])
	if nbins == 0 {
		return 0, fmt.Errorf("%w: empty rows", ErrShape)
	}

	pooled := make([]int64, nbins)
	totals := make([]float64, len(rows))
	var grand float64
	for r, row := range rows {
		if len(row) != nbins {
			return 0, fmt.Errorf("%w: row %d has %d bins, row 0 has %d", ErrShape, r, len(row), nbins)
		}
		var n int64
		for i, c := range row {
			cc := int64(c)
			if cc < 0 {
				return 0, fmt.Errorf("%w: row %d bin %d holds %d", entropy.ErrCounts, r, i, cc)
			}
			pooled[i] += cc
			n += cc
		}
		totals[r] = float64(n)
		grand += float64(n)
	}
	if grand == 0 {
		return 0, fmt.Errorf("%w: no observations in any row", entropy.ErrCounts)
	}

	js, err := e.Estimate(pooled, k)
	if err != nil {
		return 0, fmt.Errorf("pooled counts: %w", err)
	}
	for r, row := range rows {
		if totals[r] == 0 {
			continue
		}
		h, err := e.Estimate(asCounts(row), k)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", r, err)
		}
		js -= totals[r] / grand * h
	}
	if math.IsNaN(js) {
		return 0, fmt.Errorf("%w: jensen-shannon divergence", entropy.ErrNaN)
	}
	return js, nil
}

func asCounts[T constraints.Integer](row []T) []int64 {
	out := make([]int64, len(row))
	for i, c := range row {
		out[i] = int64(c)
	}
	return out
}
