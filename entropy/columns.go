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
	"runtime"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"
)

// maxWhole is the first float64 no int64 can hold.
const maxWhole = float64(1 << 63)

// EstimateCols applies e independently to every column of m. Rows are
// categories and columns are samples, so column j yields result j.
// Entries must be non-negative whole numbers. Columns are processed
// concurrently; when several fail, the error of the lowest column is
// returned.
func EstimateCols(e Estimator, m mat.Matrix, k int64) ([]float64, error) {
	_, cols := m.Dims()
	out := make([]float64, cols)
	err := forEachColumn(cols, func(j int) error {
		counts, err := columnCounts(m, j)
		if err != nil {
			return err
		}
		h, err := e.Estimate(counts, k)
		if err != nil {
			return err
		}
		out[j] = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PluginCols is EstimateCols with the plugin estimator.
func PluginCols(m mat.Matrix) ([]float64, error) {
	return EstimateCols(PluginEstimator{}, m, 0)
}

// PseudoCountCols is EstimateCols with additive smoothing alpha over k
// categories per column.
func PseudoCountCols(m mat.Matrix, k int64, alpha float64) ([]float64, error) {
	return EstimateCols(PseudoCountEstimator{Alpha: alpha}, m, k)
}

// DirichletCols is EstimateCols with a fixed concentration alpha over k
// categories per column.
func DirichletCols(m mat.Matrix, k int64, alpha float64) ([]float64, error) {
	return EstimateCols(DirichletEstimator{Alpha: alpha}, m, k)
}

// NSBCols applies NSB independently to every column of m, returning the
// per-column estimates and standard errors.
func NSBCols(m mat.Matrix, k int64) (estimates, stderrs []float64, err error) {
	_, cols := m.Dims()
	estimates = make([]float64, cols)
	stderrs = make([]float64, cols)
	err = forEachColumn(cols, func(j int) error {
		counts, cerr := columnCounts(m, j)
		if cerr != nil {
			return cerr
		}
		est, se, nerr := NSB(counts, k)
		if nerr != nil {
			return nerr
		}
		estimates[j] = est
		stderrs[j] = se
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return estimates, stderrs, nil
}

func columnCounts(m mat.Matrix, j int) ([]int64, error) {
	rows, _ := m.Dims()
	counts := make([]int64, rows)
	for i := 0; i < rows; i++ {
		v := m.At(i, j)
		if v < 0 || v != math.Trunc(v) || v >= maxWhole {
			return nil, fmt.Errorf("%w: entry (%d, %d) is %v", ErrCounts, i, j, v)
		}
		counts[i] = int64(v)
	}
	return counts, nil
}

// forEachColumn runs fn over column indices on a bounded worker pool.
// Workers write only their own column's slots, so results land in
// deterministic positions. The first error in column order wins.
func forEachColumn(cols int, fn func(j int) error) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > cols {
		workers = cols
	}
	errs := make([]error, cols)
	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				j := int(next.Add(1)) - 1
				if j >= cols {
					return
				}
				errs[j] = fn(j)
			}
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
