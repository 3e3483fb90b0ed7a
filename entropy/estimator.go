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

// Estimator is a point entropy estimator over a counts vector with
// alphabet size k. Implementations must be safe for concurrent use;
// the ones in this package are, since each call works on call-local
// state only.
type Estimator interface {
	Estimate(counts []int64, k int64) (float64, error)
}

// PluginEstimator wraps Plugin. The alphabet size is ignored, unseen
// categories cannot move a maximum-likelihood estimate.
type PluginEstimator struct{}

func (PluginEstimator) Estimate(counts []int64, _ int64) (float64, error) {
	return Plugin(counts)
}

// PseudoCountEstimator wraps PseudoCount with a fixed smoothing Alpha.
type PseudoCountEstimator struct {
	Alpha float64
}

func (e PseudoCountEstimator) Estimate(counts []int64, k int64) (float64, error) {
	return PseudoCount(counts, k, e.Alpha)
}

// DirichletEstimator wraps Dirichlet with a fixed concentration Alpha.
type DirichletEstimator struct {
	Alpha float64
}

func (e DirichletEstimator) Estimate(counts []int64, k int64) (float64, error) {
	return Dirichlet(counts, k, e.Alpha)
}

// NSBEstimator wraps NSB, discarding the standard error. The zero value
// uses the default integration settings.
type NSBEstimator struct {
	Opts NSBOptions
}

func (e NSBEstimator) Estimate(counts []int64, k int64) (float64, error) {
	estimate, _, err := NSBWithOptions(counts, k, e.Opts)
	return estimate, err
}
