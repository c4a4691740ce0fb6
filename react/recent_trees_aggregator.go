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

type recentTree struct {
	fingerprint uint64
	tree        *CallTree
}

// RecentTreesAggregator keeps the most recent distinct call trees, oldest
// evicted first. Identity is the tree fingerprint, so a tree seen twice is
// recorded once. It backs the report section from which whole traces can
// be rendered.
type RecentTreesAggregator struct {
	capacity int
	seen     map[uint64]struct{}
	trees    []recentTree
}

// NewRecentTreesAggregator returns an aggregator holding at most capacity
// trees. Panics if capacity is not positive.
func NewRecentTreesAggregator(capacity int) *RecentTreesAggregator {
	if capacity < 1 {
		panic("react: recent trees capacity must be positive")
	}
	return &RecentTreesAggregator{
		capacity: capacity,
		seen:     make(map[uint64]struct{}, capacity),
	}
}

// Aggregate records the tree unless an identical one is already held.
// The aggregator keeps a reference; the tree must not change afterwards.
func (a *RecentTreesAggregator) Aggregate(tree *CallTree) {
	fingerprint := tree.Fingerprint()
	if _, ok := a.seen[fingerprint]; ok {
		return
	}
	a.seen[fingerprint] = struct{}{}
	a.trees = append(a.trees, recentTree{fingerprint: fingerprint, tree: tree})
	if len(a.trees) > a.capacity {
		delete(a.seen, a.trees[0].fingerprint)
		a.trees = a.trees[1:]
	}
}

// Len returns the number of trees currently held.
func (a *RecentTreesAggregator) Len() int {
	return len(a.trees)
}

// WriteJSON renders the held tree documents, oldest first, under
// recent_trees.
func (a *RecentTreesAggregator) WriteJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	s.WriteObjectField("recent_trees")
	s.WriteArrayStart()
	for i, rt := range a.trees {
		if i > 0 {
			s.WriteMore()
		}
		rt.tree.WriteJSON(s)
	}
	s.WriteArrayEnd()
	s.WriteObjectEnd()
}

// MarshalJSON renders the recent trees document as a byte slice.
func (a *RecentTreesAggregator) MarshalJSON() ([]byte, error) {
	return marshalStream(a.WriteJSON)
}

var _ Aggregator = (*RecentTreesAggregator)(nil)
