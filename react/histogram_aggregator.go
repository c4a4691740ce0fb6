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
	jsoniter "github.com/json-iterator/go"
)

// HistogramAggregator owns one histogram and the updater strategy that
// feeds it. The histogram belongs to this aggregator alone; the updater
// may be shared with other aggregators.
type HistogramAggregator struct {
	actions   *ActionSet
	histogram *Histogram
	updater   HistogramUpdater
}

// NewHistogramAggregator builds an aggregator around a fresh histogram
// constructed from one tick slice per dimension, outermost first. The
// updater must produce one measurement per dimension. Panics on
// non-ascending ticks, as NewHistogram does.
func NewHistogramAggregator(actions *ActionSet, updater HistogramUpdater, ticks []int64, innerTicks ...[]int64) *HistogramAggregator {
	return &HistogramAggregator{
		actions:   actions,
		histogram: NewHistogram(ticks, innerTicks...),
		updater:   updater,
	}
}

// Aggregate consumes one call tree, deriving the action code index
// internally. A tree with no qualifying nodes contributes nothing.
func (a *HistogramAggregator) Aggregate(tree *CallTree) {
	UpdateHistogram(a.updater, a.histogram, tree)
}

// AggregateIndexed consumes one call tree using a caller-supplied index.
// Given an index derived from the same tree, the resulting histogram state
// is identical to what Aggregate produces.
func (a *HistogramAggregator) AggregateIndexed(tree *CallTree, index CodeToNodes) {
	a.updater.UpdateIndexed(a.histogram, tree, index)
}

// Histogram exposes the owned histogram for inspection.
func (a *HistogramAggregator) Histogram() *Histogram {
	return a.histogram
}

// WriteJSON renders the aggregator document: the updater description under
// histogram_updater and the bucket tree under histogram, both nested under
// histogram_aggregator.
func (a *HistogramAggregator) WriteJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	s.WriteObjectField("histogram_aggregator")
	s.WriteObjectStart()
	s.WriteObjectField("histogram_updater")
	a.updater.WriteJSON(s, a.actions)
	s.WriteMore()
	s.WriteObjectField("histogram")
	a.histogram.WriteJSON(s)
	s.WriteObjectEnd()
	s.WriteObjectEnd()
}

// MarshalJSON renders the aggregator document as a byte slice.
func (a *HistogramAggregator) MarshalJSON() ([]byte, error) {
	return marshalStream(a.WriteJSON)
}

// BatchHistogramAggregator owns an ordered collection of histogram
// aggregators and drives all of them over each tree with a single shared
// action code index. Without the sharing, each tree would pay the index
// construction cost once per aggregator.
type BatchHistogramAggregator struct {
	actions     *ActionSet
	aggregators []*HistogramAggregator
}

// NewBatchHistogramAggregator returns an empty batch whose aggregators
// resolve action names through actions.
func NewBatchHistogramAggregator(actions *ActionSet) *BatchHistogramAggregator {
	return &BatchHistogramAggregator{actions: actions}
}

// AddHistogramAggregator constructs a histogram aggregator and appends it
// to the batch. Insertion order is preserved and is the serialization
// order. The new aggregator is returned for inspection.
func (b *BatchHistogramAggregator) AddHistogramAggregator(updater HistogramUpdater, ticks []int64, innerTicks ...[]int64) *HistogramAggregator {
	a := NewHistogramAggregator(b.actions, updater, ticks, innerTicks...)
	b.aggregators = append(b.aggregators, a)
	return a
}

// Aggregate builds the tree's action code index exactly once and drives
// every owned aggregator with it, in insertion order.
func (b *BatchHistogramAggregator) Aggregate(tree *CallTree) {
	index := tree.CodeToNodeIndex()
	for _, a := range b.aggregators {
		a.AggregateIndexed(tree, index)
	}
}

// WriteJSON renders every owned aggregator's document, in insertion order,
// under batch_histogram_aggregator / histogram_aggregators.
func (b *BatchHistogramAggregator) WriteJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	s.WriteObjectField("batch_histogram_aggregator")
	s.WriteObjectStart()
	s.WriteObjectField("histogram_aggregators")
	s.WriteArrayStart()
	for i, a := range b.aggregators {
		if i > 0 {
			s.WriteMore()
		}
		a.WriteJSON(s)
	}
	s.WriteArrayEnd()
	s.WriteObjectEnd()
	s.WriteObjectEnd()
}

// MarshalJSON renders the batch document as a byte slice.
func (b *BatchHistogramAggregator) MarshalJSON() ([]byte, error) {
	return marshalStream(b.WriteJSON)
}

var (
	_ Aggregator = (*HistogramAggregator)(nil)
	_ Aggregator = (*BatchHistogramAggregator)(nil)
)
