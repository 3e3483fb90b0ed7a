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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const numericTolerance = 1e-12

func TestPlugin(t *testing.T) {
	t.Run("Uniform Counts", func(t *testing.T) {
		h, err := Plugin([]int64{1, 1, 1, 1})
		assert.NoError(t, err)
		assert.InDelta(t, math.Log(4), h, numericTolerance)
	})

	t.Run("Single Bin Is Certain", func(t *testing.T) {
		h, err := Plugin([]int64{10})
		assert.NoError(t, err)
		assert.Equal(t, 0.0, h)
	})

	t.Run("Single Empty Bin Is Certain", func(t *testing.T) {
		h, err := Plugin([]int64{0})
		assert.NoError(t, err)
		assert.Equal(t, 0.0, h)
	})

	t.Run("Empty Bins Do Not Contribute", func(t *testing.T) {
		h, err := Plugin([]int64{2, 0, 2})
		assert.NoError(t, err)
		assert.InDelta(t, math.Log(2), h, numericTolerance)
	})

	t.Run("Skewed Counts", func(t *testing.T) {
		h, err := Plugin([]int64{3, 1})
		assert.NoError(t, err)
		assert.InDelta(t, math.Log(4)-0.75*math.Log(3), h, numericTolerance)
	})

	t.Run("Matches The Empirical Frequencies", func(t *testing.T) {
		h, err := Plugin([]int64{5, 3, 2})
		assert.NoError(t, err)
		want := -(0.5*math.Log(0.5) + 0.3*math.Log(0.3) + 0.2*math.Log(0.2))
		assert.InDelta(t, want, h, numericTolerance)
	})

	t.Run("Any Integer Element Type", func(t *testing.T) {
		h8, err := Plugin([]uint8{1, 1, 1, 1})
		assert.NoError(t, err)
		hInt, err2 := Plugin([]int{1, 1, 1, 1})
		assert.NoError(t, err2)
		assert.Equal(t, h8, hInt)
	})

	t.Run("Rejects No Observations", func(t *testing.T) {
		_, err := Plugin([]int64{0, 0, 0})
		assert.ErrorIs(t, err, ErrCounts)
	})

	t.Run("Rejects Empty Counts", func(t *testing.T) {
		_, err := Plugin([]int64{})
		assert.ErrorIs(t, err, ErrCounts)
	})

	t.Run("Rejects Negative Count", func(t *testing.T) {
		_, err := Plugin([]int64{2, -1})
		assert.ErrorIs(t, err, ErrCounts)
	})
}

func TestPseudoCount(t *testing.T) {
	t.Run("Zero Alpha Matches Plugin", func(t *testing.T) {
		h, err := PseudoCount([]int64{5, 3, 2}, 0, 0)
		assert.NoError(t, err)
		p, err := Plugin([]int64{5, 3, 2})
		assert.NoError(t, err)
		assert.Equal(t, p, h)
	})

	t.Run("Laplace Smoothing Without Data", func(t *testing.T) {
		h, err := PseudoCount([]int64{0, 0, 0, 0}, 4, 1)
		assert.NoError(t, err)
		assert.InDelta(t, math.Log(4), h, numericTolerance)
	})

	t.Run("Smooths Over Unobserved Categories", func(t *testing.T) {
		// (2, 1) with two unobserved categories at alpha 1/2 gives the
		// smoothed distribution (0.5, 0.3, 0.1, 0.1).
		h, err := PseudoCount([]int64{2, 1}, 4, 0.5)
		assert.NoError(t, err)
		want := -(0.5*math.Log(0.5) + 0.3*math.Log(0.3) + 0.2*math.Log(0.1))
		assert.InDelta(t, want, h, numericTolerance)
	})

	t.Run("Single Category Alphabet", func(t *testing.T) {
		h, err := PseudoCount([]int64{7}, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, h)
	})

	t.Run("Rejects Negative Alpha", func(t *testing.T) {
		_, err := PseudoCount([]int64{1, 2}, 0, -0.5)
		assert.ErrorIs(t, err, ErrNonPositiveAlpha)
	})

	t.Run("Rejects NaN Alpha", func(t *testing.T) {
		_, err := PseudoCount([]int64{1, 2}, 0, math.NaN())
		assert.ErrorIs(t, err, ErrNonPositiveAlpha)
	})

	t.Run("Rejects Infinite Alpha", func(t *testing.T) {
		_, err := PseudoCount([]int64{1, 2}, 0, math.Inf(1))
		assert.ErrorIs(t, err, ErrNonPositiveAlpha)
	})

	t.Run("Rejects Alphabet Smaller Than Bins", func(t *testing.T) {
		_, err := PseudoCount([]int64{1, 2}, 1, 1)
		assert.ErrorIs(t, err, ErrAlphabetSize)
	})
}
