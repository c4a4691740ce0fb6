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

// HistogramUpdater extracts measurements from a call tree and applies them
// to a histogram. It is the seam for new measurement kinds: adding a
// strategy never touches the histogram or aggregator types.
//
// Updaters are read-only after construction and may be shared across
// aggregators and across concurrent aggregation passes.
type HistogramUpdater interface {
	// UpdateIndexed extracts measurements from the tree using a
	// precomputed action code index and feeds them to the histogram.
	UpdateIndexed(h *Histogram, tree *CallTree, index CodeToNodes)

	// WriteJSON renders the updater description, resolving action codes
	// through actions.
	WriteJSON(s *jsoniter.Stream, actions *ActionSet)
}

// UpdateHistogram is the trace-only call shape: it derives the action code
// index from the tree and delegates to UpdateIndexed. Every updater
// therefore behaves identically whether or not the caller supplies an
// index.
func UpdateHistogram(u HistogramUpdater, h *Histogram, tree *CallTree) {
	u.UpdateIndexed(h, tree, tree.CodeToNodeIndex())
}

// ActionTimeUpdater feeds the elapsed duration (stop − start) of every
// node carrying one action code into a one-dimensional histogram.
type ActionTimeUpdater struct {
	actionCode int
}

// NewActionTimeUpdater binds an updater to an action code.
func NewActionTimeUpdater(actionCode int) *ActionTimeUpdater {
	return &ActionTimeUpdater{actionCode: actionCode}
}

// UpdateIndexed implements HistogramUpdater. An action code absent from
// the index contributes nothing.
func (u *ActionTimeUpdater) UpdateIndexed(h *Histogram, tree *CallTree, index CodeToNodes) {
	for _, id := range index[u.actionCode] {
		h.Update(tree.StopTime(id) - tree.StartTime(id))
	}
}

// WriteJSON implements HistogramUpdater.
func (u *ActionTimeUpdater) WriteJSON(s *jsoniter.Stream, actions *ActionSet) {
	s.WriteObjectStart()
	s.WriteObjectField("name")
	s.WriteString("action_time_updater")
	s.WriteMore()
	s.WriteObjectField("action_name")
	s.WriteString(actions.ActionName(u.actionCode))
	s.WriteObjectEnd()
}

// ActionSubactionTimeUpdater feeds (action duration, sub-action duration)
// pairs into a two-dimensional histogram: for every node carrying the
// outer action code, one pair per direct child carrying the sub-action
// code.
type ActionSubactionTimeUpdater struct {
	actionCode    int
	subactionCode int
}

// NewActionSubactionTimeUpdater binds an updater to an outer action code
// and the sub-action code measured within it.
func NewActionSubactionTimeUpdater(actionCode, subactionCode int) *ActionSubactionTimeUpdater {
	return &ActionSubactionTimeUpdater{
		actionCode:    actionCode,
		subactionCode: subactionCode,
	}
}

// UpdateIndexed implements HistogramUpdater.
func (u *ActionSubactionTimeUpdater) UpdateIndexed(h *Histogram, tree *CallTree, index CodeToNodes) {
	for _, id := range index[u.actionCode] {
		duration := tree.StopTime(id) - tree.StartTime(id)
		for _, child := range tree.Children(id) {
			if tree.ActionCode(child) != u.subactionCode {
				continue
			}
			h.Update(duration, tree.StopTime(child)-tree.StartTime(child))
		}
	}
}

// WriteJSON implements HistogramUpdater.
func (u *ActionSubactionTimeUpdater) WriteJSON(s *jsoniter.Stream, actions *ActionSet) {
	s.WriteObjectStart()
	s.WriteObjectField("name")
	s.WriteString("action_subaction_time_updater")
	s.WriteMore()
	s.WriteObjectField("action_name")
	s.WriteString(actions.ActionName(u.actionCode))
	s.WriteMore()
	s.WriteObjectField("subaction_name")
	s.WriteString(actions.ActionName(u.subactionCode))
	s.WriteObjectEnd()
}

var (
	_ HistogramUpdater = (*ActionTimeUpdater)(nil)
	_ HistogramUpdater = (*ActionSubactionTimeUpdater)(nil)
)
