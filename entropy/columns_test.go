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
	"gonum.org/v1/gonum/mat"
)

func columnOf(m mat.Matrix, j int) []int64 {
	rows, _ := m.Dims()
	counts := make([]int64, rows)
	for i := 0; i < rows; i++ {
		counts[i] = int64(m.At(i, j))
	}
	return counts
}

func TestEstimateCols(t *testing.T) {
	m := mat.NewDense(4, 3, []float64{
		5, 1, 10,
		3, 1, 0,
		2, 1, 0,
		0, 1, 2,
	})

	t.Run("Plugin Matches Scalar Per Column", func(t *testing.T) {
		got, err := PluginCols(m)
		assert.NoError(t, err)
		assert.Len(t, got, 3)
		for j := range got {
			want, err := Plugin(columnOf(m, j))
			assert.NoError(t, err)
			assert.Equal(t, want, got[j])
		}
	})

	t.Run("PseudoCount Matches Scalar Per Column", func(t *testing.T) {
		got, err := PseudoCountCols(m, 6, 1)
		assert.NoError(t, err)
		for j := range got {
			want, err := PseudoCount(columnOf(m, j), 6, 1)
			assert.NoError(t, err)
			assert.Equal(t, want, got[j])
		}
	})

	t.Run("Dirichlet Matches Scalar Per Column", func(t *testing.T) {
		got, err := DirichletCols(m, 6, 0.5)
		assert.NoError(t, err)
		for j := range got {
			want, err := Dirichlet(columnOf(m, j), 6, 0.5)
			assert.NoError(t, err)
			assert.Equal(t, want, got[j])
		}
	})

	t.Run("More Columns Than Workers", func(t *testing.T) {
		wide := mat.NewDense(3, 16, nil)
		for j := 0; j < 16; j++ {
			wide.Set(0, j, float64(j+1))
			wide.Set(1, j, float64(2*j+1))
			wide.Set(2, j, 1)
		}
		got, err := PluginCols(wide)
		assert.NoError(t, err)
		for j := range got {
			want, err := Plugin(columnOf(wide, j))
			assert.NoError(t, err)
			assert.Equal(t, want, got[j])
		}
	})

	t.Run("Rejects Fractional Entry", func(t *testing.T) {
		bad := mat.NewDense(2, 2, []float64{1, 2.5, 3, 4})
		_, err := PluginCols(bad)
		assert.ErrorIs(t, err, ErrCounts)
		assert.ErrorContains(t, err, "entry (0, 1)")
	})

	t.Run("Rejects Negative Entry", func(t *testing.T) {
		bad := mat.NewDense(2, 2, []float64{1, 2, -3, 4})
		_, err := PluginCols(bad)
		assert.ErrorIs(t, err, ErrCounts)
		assert.ErrorContains(t, err, "entry (1, 0)")
	})

	t.Run("Rejects Infinite Entry", func(t *testing.T) {
		bad := mat.NewDense(2, 2, []float64{1, 2, math.Inf(1), 4})
		_, err := PluginCols(bad)
		assert.ErrorIs(t, err, ErrCounts)
	})

	t.Run("Lowest Column Error Wins", func(t *testing.T) {
		bad := mat.NewDense(2, 3, []float64{
			1, -1, 0.5,
			1, 1, 1,
		})
		_, err := PluginCols(bad)
		assert.ErrorIs(t, err, ErrCounts)
		assert.ErrorContains(t, err, "entry (0, 1)")
	})
}

func TestNSBCols(t *testing.T) {
	t.Run("Matches Scalar Per Column", func(t *testing.T) {
		m := mat.NewDense(3, 2, []float64{
			9, 1,
			4, 1,
			2, 1,
		})
		ests, stderrs, err := NSBCols(m, 5)
		assert.NoError(t, err)
		assert.Len(t, ests, 2)
		assert.Len(t, stderrs, 2)
		for j := 0; j < 2; j++ {
			est, stderr, err := NSB(columnOf(m, j), 5)
			assert.NoError(t, err)
			assert.Equal(t, est, ests[j])
			assert.Equal(t, stderr, stderrs[j])
		}
	})

	t.Run("Propagates Column Errors", func(t *testing.T) {
		m := mat.NewDense(2, 1, []float64{1, 1})
		_, _, err := NSBCols(m, 1)
		assert.ErrorIs(t, err, ErrAlphabetSize)
	})
}
