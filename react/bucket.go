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
	"math"

	jsoniter "github.com/json-iterator/go"
)

// Bucket is the terminal frequency counter of a histogram dimension chain.
// Its count only ever grows; there is no reset.
type Bucket struct {
	frequency uint64
}

// NewBucket returns a bucket with frequency zero.
func NewBucket() *Bucket {
	return &Bucket{}
}

// Update increments the frequency by one. Trailing measurements, if any,
// belong to inner dimensions and are ignored at the leaf. The counter
// saturates instead of wrapping.
func (b *Bucket) Update(_ ...int64) {
	if b.frequency == math.MaxUint64 {
		return
	}
	b.frequency++
}

// Get returns the observation count. Index arguments are ignored at the
// leaf.
func (b *Bucket) Get(_ ...int) uint64 {
	return b.frequency
}

// WriteJSON renders the standalone bucket document.
func (b *Bucket) WriteJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	s.WriteObjectField("frequency")
	s.WriteUint64(b.frequency)
	s.WriteObjectEnd()
}

// MarshalJSON renders the standalone bucket document as a byte slice.
func (b *Bucket) MarshalJSON() ([]byte, error) {
	return marshalStream(b.WriteJSON)
}

// writeValue is the in-histogram rendering: the bare count.
func (b *Bucket) writeValue(s *jsoniter.Stream) {
	s.WriteUint64(b.frequency)
}
