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

	"gonum.org/v1/gonum/mathext"
)

// SpecialFunctions supplies the gamma-family functions the Bayesian
// estimators evaluate in their inner loops. The default implementation
// delegates to gonum; callers may substitute their own, for instance a
// memoizing wrapper when the same counts are estimated across a sweep of
// concentration values.
type SpecialFunctions interface {
	// Lgamma returns the natural log of the absolute value of the gamma
	// function. All estimator arguments are positive, where gamma is
	// positive too.
	Lgamma(x float64) float64
	// Digamma returns the logarithmic derivative of the gamma function.
	Digamma(x float64) float64
	// Trigamma returns the second logarithmic derivative of the gamma
	// function.
	Trigamma(x float64) float64
}

type gonumSpecial struct{}

func (gonumSpecial) Lgamma(x float64) float64 {
	value, _ := math.Lgamma(x)
	return value
}

func (gonumSpecial) Digamma(x float64) float64 { return mathext.Digamma(x) }

// Trigamma is the Hurwitz zeta function at s = 2.
func (gonumSpecial) Trigamma(x float64) float64 { return mathext.Zeta(2, x) }

var defaultSpecial SpecialFunctions = gonumSpecial{}
