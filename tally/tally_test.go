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

package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSketch(t *testing.T) {
	t.Run("Counts In First Seen Order", func(t *testing.T) {
		sketch := NewSketch[string]()
		for _, item := range []string{"b", "a", "b", "c", "a", "b"} {
			sketch.Update(item)
		}

		assert.Equal(t, []string{"b", "a", "c"}, sketch.Items())
		assert.Equal(t, []int64{3, 2, 1}, sketch.Counts())
		assert.Equal(t, int64(6), sketch.N())
		assert.Equal(t, 3, sketch.NumItems())
		assert.Equal(t, int64(3), sketch.Count("b"))
		assert.Equal(t, int64(0), sketch.Count("missing"))
		assert.False(t, sketch.IsEmpty())
	})

	t.Run("UpdateMany Accumulates Weight", func(t *testing.T) {
		sketch := NewSketch[int]()
		assert.NoError(t, sketch.UpdateMany(7, 5))
		sketch.Update(7)
		assert.Equal(t, int64(6), sketch.Count(7))
		assert.Equal(t, int64(6), sketch.N())
	})

	t.Run("Zero Weight Is A No-Op", func(t *testing.T) {
		sketch := NewSketch[int]()
		assert.NoError(t, sketch.UpdateMany(1, 0))
		assert.True(t, sketch.IsEmpty())
		assert.Equal(t, int64(0), sketch.N())
		assert.Equal(t, 0, sketch.NumItems())
	})

	t.Run("Negative Weight Is Rejected", func(t *testing.T) {
		sketch := NewSketch[int]()
		err := sketch.UpdateMany(1, -3)
		assert.ErrorIs(t, err, ErrWeight)
		assert.True(t, sketch.IsEmpty())
	})

	t.Run("Reset Clears And Reuses", func(t *testing.T) {
		sketch := NewSketch[string]()
		sketch.Update("x")
		sketch.Update("y")
		sketch.Reset()

		assert.True(t, sketch.IsEmpty())
		assert.Equal(t, int64(0), sketch.N())
		assert.Empty(t, sketch.Counts())

		sketch.Update("z")
		assert.Equal(t, []string{"z"}, sketch.Items())
		assert.Equal(t, []int64{1}, sketch.Counts())
	})
}
