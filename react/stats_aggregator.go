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
	"github.com/beorn7/perks/quantile"
	jsoniter "github.com/json-iterator/go"
)

// statsQuantiles are the ranks reported for an action's duration stream,
// with their allowed estimation error, in serialization order.
var statsQuantiles = []struct {
	rank  float64
	err   float64
	label string
}{
	{0.5, 0.05, "50%"},
	{0.75, 0.01, "75%"},
	{0.9, 0.01, "90%"},
	{0.95, 0.005, "95%"},
	{0.99, 0.001, "99%"},
}

// ActionTimeStatsAggregator tracks the duration stream of one action code
// through a targeted quantile estimator and reports call count and rank
// estimates. It complements the histogram aggregators where the operator
// wants percentiles instead of fixed buckets.
type ActionTimeStatsAggregator struct {
	actions    *ActionSet
	actionCode int
	durations  *quantile.Stream
	calls      uint64
}

// NewActionTimeStatsAggregator binds a stats aggregator to an action code.
func NewActionTimeStatsAggregator(actions *ActionSet, actionCode int) *ActionTimeStatsAggregator {
	objectives := make(map[float64]float64, len(statsQuantiles))
	for _, q := range statsQuantiles {
		objectives[q.rank] = q.err
	}
	return &ActionTimeStatsAggregator{
		actions:    actions,
		actionCode: actionCode,
		durations:  quantile.NewTargeted(objectives),
	}
}

// Aggregate consumes one call tree, deriving the action code index
// internally.
func (a *ActionTimeStatsAggregator) Aggregate(tree *CallTree) {
	a.AggregateIndexed(tree, tree.CodeToNodeIndex())
}

// AggregateIndexed consumes one call tree using a caller-supplied index.
func (a *ActionTimeStatsAggregator) AggregateIndexed(tree *CallTree, index CodeToNodes) {
	for _, id := range index[a.actionCode] {
		a.durations.Insert(float64(tree.StopTime(id) - tree.StartTime(id)))
		a.calls++
	}
}

// Calls returns the number of durations observed so far.
func (a *ActionTimeStatsAggregator) Calls() uint64 {
	return a.calls
}

// Quantile returns the estimated duration at the given rank, or 0 before
// any observation.
func (a *ActionTimeStatsAggregator) Quantile(rank float64) int64 {
	if a.calls == 0 {
		return 0
	}
	return int64(a.durations.Query(rank))
}

// WriteJSON renders the stats document under action_time_stats.
func (a *ActionTimeStatsAggregator) WriteJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	s.WriteObjectField("action_time_stats")
	s.WriteObjectStart()
	s.WriteObjectField("action_name")
	s.WriteString(a.actions.ActionName(a.actionCode))
	s.WriteMore()
	s.WriteObjectField("calls")
	s.WriteUint64(a.calls)
	s.WriteMore()
	s.WriteObjectField("quantiles")
	s.WriteObjectStart()
	for i, q := range statsQuantiles {
		if i > 0 {
			s.WriteMore()
		}
		s.WriteObjectField(q.label)
		s.WriteInt64(a.Quantile(q.rank))
	}
	s.WriteObjectEnd()
	s.WriteObjectEnd()
	s.WriteObjectEnd()
}

// MarshalJSON renders the stats document as a byte slice.
func (a *ActionTimeStatsAggregator) MarshalJSON() ([]byte, error) {
	return marshalStream(a.WriteJSON)
}

var _ Aggregator = (*ActionTimeStatsAggregator)(nil)
