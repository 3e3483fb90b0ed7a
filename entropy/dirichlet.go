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

	"golang.org/x/exp/constraints"
)

// posterior evaluates the quantities the Bayesian estimators need for a
// fixed counts vector under a symmetric Dirichlet(alpha) prior: the log
// marginal likelihood of the data and the posterior mean entropy. Both are
// smooth functions of alpha, evaluated repeatedly during NSB integration.
type posterior struct {
	mult *Multiplicities
	fns  SpecialFunctions
	kf   float64
	nf   float64
}

func newPosterior(mult *Multiplicities, fns SpecialFunctions) *posterior {
	return &posterior{
		mult: mult,
		fns:  fns,
		kf:   float64(mult.K()),
		nf:   float64(mult.N()),
	}
}

// logMarginal returns the log of the Dirichlet-multinomial marginal
// likelihood of the counts at concentration alpha, multinomial
// coefficient included.
func (dp *posterior) logMarginal(alpha float64) float64 {
	lg := dp.fns.Lgamma
	sum := lg(dp.nf+1) + lg(alpha*dp.kf) - dp.kf*lg(alpha) - lg(dp.nf+alpha*dp.kf)
	for i := 0; i < dp.mult.Len(); i++ {
		z, m := dp.mult.At(i)
		sum += float64(m) * (lg(float64(z)+alpha) - lg(float64(z)+1))
	}
	return sum
}

// meanEntropy returns the posterior mean of the distribution entropy at
// concentration alpha.
func (dp *posterior) meanEntropy(alpha float64) float64 {
	total := dp.nf + alpha*dp.kf
	var weighted float64
	for i := 0; i < dp.mult.Len(); i++ {
		z, m := dp.mult.At(i)
		zc := float64(z) + alpha
		weighted += float64(m) * zc * dp.fns.Digamma(zc+1)
	}
	return dp.fns.Digamma(total+1) - weighted/total
}

// Dirichlet returns the posterior mean entropy of the distribution behind
// counts under a symmetric Dirichlet prior with concentration alpha. With
// no observations it reduces to the prior mean entropy,
// digamma(alpha*k + 1) - digamma(alpha + 1).
func Dirichlet[T constraints.Integer](counts []T, k int64, alpha float64) (float64, error) {
	if err := checkAlpha(alpha); err != nil {
		return 0, err
	}
	mult, err := NewMultiplicities(asCounts(counts), k)
	if err != nil {
		return 0, err
	}
	if mult.K() == 1 {
		return 0, nil
	}
	h := newPosterior(mult, defaultSpecial).meanEntropy(alpha)
	if math.IsNaN(h) {
		return 0, fmt.Errorf("%w: posterior mean entropy at alpha %v", ErrNaN, alpha)
	}
	return h, nil
}
