// Copyright 2026 The react-go Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package react

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// container is the capability a histogram requires of its children: either
// another Histogram, adding one measurement dimension, or the terminal
// Bucket.
type container interface {
	Update(measurements ...int64)
	Get(indices ...int) uint64
	writeValue(s *jsoniter.Stream)
}

// Histogram is an N-dimensional frequency grid. Each dimension is a set of
// ascending boundary values ("ticks"); a tick is the exclusive upper bound
// of its bucket, so a measurement equal to a tick falls into the bucket
// above it. A MaxInt64 sentinel tick is kept internally so that every
// measurement finds a bucket.
//
// Histograms are not synchronized; see the Aggregator contract.
type Histogram struct {
	ticks    []int64 // ascending, last entry is the MaxInt64 sentinel
	children []container
	dims     int
}

// NewHistogram builds a histogram from one ascending tick slice per
// dimension, outermost first. The innermost dimension's children are plain
// Buckets. A trailing MaxInt64 tick in any dimension is dropped: the
// sentinel is implicit.
//
// NewHistogram panics if any tick slice is not strictly ascending. Tick
// sequences are operator configuration; getting them wrong is a programmer
// error that must surface at construction, not during aggregation.
func NewHistogram(ticks []int64, innerTicks ...[]int64) *Histogram {
	for i := 1; i < len(ticks); i++ {
		if ticks[i-1] >= ticks[i] {
			panic(fmt.Errorf(
				"react: histogram ticks must be strictly ascending: %d >= %d",
				ticks[i-1], ticks[i],
			))
		}
	}
	if n := len(ticks); n > 0 && ticks[n-1] == math.MaxInt64 {
		ticks = ticks[:n-1]
	}

	h := &Histogram{
		ticks: make([]int64, 0, len(ticks)+1),
		dims:  len(innerTicks) + 1,
	}
	h.ticks = append(h.ticks, ticks...)
	h.ticks = append(h.ticks, math.MaxInt64)

	h.children = make([]container, len(h.ticks))
	for i := range h.children {
		if len(innerTicks) == 0 {
			h.children[i] = NewBucket()
		} else {
			h.children[i] = NewHistogram(innerTicks[0], innerTicks[1:]...)
		}
	}
	return h
}

// Dims returns the number of measurement dimensions.
func (h *Histogram) Dims() int {
	return h.dims
}

// Ticks returns a copy of the outermost dimension's boundary values,
// including the trailing sentinel.
func (h *Histogram) Ticks() []int64 {
	out := make([]int64, len(h.ticks))
	copy(out, h.ticks)
	return out
}

// Buckets returns the number of buckets along the outermost dimension.
func (h *Histogram) Buckets() int {
	return len(h.children)
}

// Update routes one measurement per dimension to its bucket and increments
// that bucket's frequency. The target position along each dimension is the
// first tick strictly greater than the measurement, found by binary
// search: below all ticks lands at position 0, at-or-above all real ticks
// lands in the sentinel bucket.
func (h *Histogram) Update(measurements ...int64) {
	if len(measurements) == 0 {
		panic("react: histogram update needs one measurement per dimension")
	}
	m := measurements[0]
	position := sort.Search(len(h.ticks), func(i int) bool { return h.ticks[i] > m })
	if position == len(h.children) {
		// m equals the sentinel itself; it still belongs to the last bucket.
		position--
	}
	h.children[position].Update(measurements[1:]...)
}

// Get returns the frequency at the bucket path addressed by one direct
// index per dimension. It is a plain indexed lookup for inspection and
// tests, not a boundary search. Called with no indices it returns 0,
// keeping the leaf/branch capability uniform.
func (h *Histogram) Get(indices ...int) uint64 {
	if len(indices) == 0 {
		return 0
	}
	return h.children[indices[0]].Get(indices[1:]...)
}

// WriteJSON renders one "<tick" key per bucket in tick order. The sentinel
// key keeps its literal numeric value ("<9223372036854775807"); downstream
// report consumers rely on that spelling. Leaf buckets render as bare
// counts, inner histograms as nested objects.
func (h *Histogram) WriteJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	for i, tick := range h.ticks {
		if i > 0 {
			s.WriteMore()
		}
		s.WriteObjectField("<" + strconv.FormatInt(tick, 10))
		h.children[i].writeValue(s)
	}
	s.WriteObjectEnd()
}

// MarshalJSON renders the bucket tree as a byte slice.
func (h *Histogram) MarshalJSON() ([]byte, error) {
	return marshalStream(h.WriteJSON)
}

func (h *Histogram) writeValue(s *jsoniter.Stream) {
	h.WriteJSON(s)
}
