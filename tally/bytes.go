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
	"encoding/binary"
	"unsafe"

	"github.com/twmb/murmur3"
)

const defaultUpdateSeed = 9001

// fingerprint is the 128-bit murmur3 hash standing in for an item.
type fingerprint [2]uint64

// ByteSketch tallies observations identified by their bytes, keying each
// item by its 128-bit murmur3 fingerprint instead of retaining the bytes.
// Distinct items colliding on the full 128 bits are counted together;
// that chance is negligible for realistic streams. A ByteSketch is
// single-writer, like Sketch.
type ByteSketch struct {
	sketch  *Sketch[fingerprint]
	seed    uint64
	scratch [8]byte
}

// NewByteSketch returns an empty byte tally with the default hash seed.
func NewByteSketch() *ByteSketch {
	return NewByteSketchWithSeed(defaultUpdateSeed)
}

// NewByteSketchWithSeed returns an empty byte tally whose fingerprints
// are salted with seed. Tallies only produce comparable item identities
// when built with the same seed.
func NewByteSketchWithSeed(seed uint64) *ByteSketch {
	return &ByteSketch{sketch: NewSketch[fingerprint](), seed: seed}
}

// UpdateSlice records one occurrence of datum. An empty slice is a no-op.
func (b *ByteSketch) UpdateSlice(datum []byte) {
	if len(datum) == 0 {
		return
	}
	b.sketch.Update(b.hash(datum))
}

// UpdateString records one occurrence of datum. An empty string is a
// no-op.
func (b *ByteSketch) UpdateString(datum string) {
	// get a slice to the string data (avoiding a copy to heap)
	b.UpdateSlice(unsafe.Slice(unsafe.StringData(datum), len(datum)))
}

// UpdateUInt64 records one occurrence of datum.
func (b *ByteSketch) UpdateUInt64(datum uint64) {
	binary.LittleEndian.PutUint64(b.scratch[:], datum)
	b.sketch.Update(b.hash(b.scratch[:]))
}

// UpdateInt64 records one occurrence of datum.
func (b *ByteSketch) UpdateInt64(datum int64) {
	b.UpdateUInt64(uint64(datum))
}

// Counts returns the tally as a counts vector in first-seen item order.
func (b *ByteSketch) Counts() []int64 {
	return b.sketch.Counts()
}

// NumItems returns the number of distinct items recorded.
func (b *ByteSketch) NumItems() int {
	return b.sketch.NumItems()
}

// N returns the total number of occurrences recorded.
func (b *ByteSketch) N() int64 {
	return b.sketch.N()
}

// IsEmpty returns true if nothing has been recorded.
func (b *ByteSketch) IsEmpty() bool {
	return b.sketch.IsEmpty()
}

// Reset restores the tally to its empty state.
func (b *ByteSketch) Reset() {
	b.sketch.Reset()
}

func (b *ByteSketch) hash(bs []byte) fingerprint {
	h1, h2 := murmur3.SeedSum128(b.seed, b.seed, bs)
	return fingerprint{h1, h2}
}
