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

// Package tally builds counts vectors from streams of raw observations,
// the front end the entropy and divergence estimators consume. Unlike a
// frequency sketch, a tally is exact: entropy estimation needs the true
// histogram, so nothing is purged or approximated.
package tally

import "fmt"

// Sketch is an exact frequency tally over items of any comparable type.
// Counts come back in first-seen item order, so feeding the same stream
// twice yields identical vectors. A Sketch is single-writer; concurrent
// updates need external synchronization.
type Sketch[C comparable] struct {
	counts map[C]int64
	order  []C
	n      int64
}

// NewSketch returns an empty tally.
func NewSketch[C comparable]() *Sketch[C] {
	return &Sketch[C]{counts: make(map[C]int64)}
}

// Update records one occurrence of item.
func (s *Sketch[C]) Update(item C) {
	if _, seen := s.counts[item]; !seen {
		s.order = append(s.order, item)
	}
	s.counts[item]++
	s.n++
}

// UpdateMany records count occurrences of item. A count of zero is a
// no-op; a negative count fails with ErrWeight.
func (s *Sketch[C]) UpdateMany(item C, count int64) error {
	if count == 0 {
		return nil
	}
	if count < 0 {
		return fmt.Errorf("%w: got %d", ErrWeight, count)
	}
	if _, seen := s.counts[item]; !seen {
		s.order = append(s.order, item)
	}
	s.counts[item] += count
	s.n += count
	return nil
}

// Count returns the number of recorded occurrences of item.
func (s *Sketch[C]) Count(item C) int64 {
	return s.counts[item]
}

// Counts returns the tally as a counts vector in first-seen item order.
func (s *Sketch[C]) Counts() []int64 {
	out := make([]int64, len(s.order))
	for i, item := range s.order {
		out[i] = s.counts[item]
	}
	return out
}

// Items returns the distinct items in first-seen order.
func (s *Sketch[C]) Items() []C {
	out := make([]C, len(s.order))
	copy(out, s.order)
	return out
}

// NumItems returns the number of distinct items recorded.
func (s *Sketch[C]) NumItems() int {
	return len(s.order)
}

// N returns the total number of occurrences recorded.
func (s *Sketch[C]) N() int64 {
	return s.n
}

// IsEmpty returns true if nothing has been recorded.
func (s *Sketch[C]) IsEmpty() bool {
	return len(s.order) == 0
}

// Reset restores the tally to its empty state.
func (s *Sketch[C]) Reset() {
	s.counts = make(map[C]int64)
	s.order = s.order[:0]
	s.n = 0
}
