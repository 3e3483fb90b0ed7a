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

import "fmt"

// Multiplicities is the compressed histogram-of-histograms form of a counts
// vector: for each distinct count value z, the number of categories m that
// were observed exactly z times. Categories the alphabet allows but the
// sample never hit are folded into the z == 0 entry. The representation is
// built once per estimation call and read-only afterwards; it satisfies
// sum(m) == K and sum(m*z) == N.
type Multiplicities struct {
	z []int64
	m []int64
	k int64
	n int64
}

// NewMultiplicities compresses a counts vector into its multiplicity
// representation. k is the total number of categories in the alphabet,
// observed or not; k == 0 means "as many categories as observed bins".
// Any other k smaller than len(counts) is rejected with ErrAlphabetSize.
func NewMultiplicities(counts []int64, k int64) (*Multiplicities, error) {
	n, err := checkCounts(counts)
	if err != nil {
		return nil, err
	}
	nbins := int64(len(counts))
	if k == 0 {
		k = nbins
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrAlphabetSize, k)
	}
	if k < nbins {
		return nil, fmt.Errorf("%w: %d categories for %d observed bins", ErrAlphabetSize, k, nbins)
	}

	var nmax int64
	for _, c := range counts {
		if c > nmax {
			nmax = c
		}
	}
	tally := make([]int64, nmax+1)
	for _, c := range counts {
		tally[c]++
	}
	tally[0] += k - nbins

	mult := &Multiplicities{k: k, n: n}
	for v, t := range tally {
		if t > 0 {
			mult.z = append(mult.z, int64(v))
			mult.m = append(mult.m, t)
		}
	}
	return mult, nil
}

// K returns the alphabet size, including unobserved categories.
func (mult *Multiplicities) K() int64 { return mult.k }

// N returns the total number of observations.
func (mult *Multiplicities) N() int64 { return mult.n }

// Len returns the number of distinct count values, z == 0 included when
// the alphabet has categories without observations.
func (mult *Multiplicities) Len() int { return len(mult.z) }

// At returns the i-th (count value, category multiplicity) pair. Count
// values are distinct and strictly increasing in i.
func (mult *Multiplicities) At(i int) (z, m int64) { return mult.z[i], mult.m[i] }

// Observed returns the number of categories with at least one observation.
func (mult *Multiplicities) Observed() int64 {
	var obs int64
	for i, z := range mult.z {
		if z > 0 {
			obs += mult.m[i]
		}
	}
	return obs
}

func checkCounts(counts []int64) (n int64, err error) {
	if len(counts) == 0 {
		return 0, fmt.Errorf("%w: empty counts vector", ErrCounts)
	}
	for i, c := range counts {
		if c < 0 {
			return 0, fmt.Errorf("%w: bin %d holds %d", ErrCounts, i, c)
		}
		n += c
	}
	return n, nil
}
