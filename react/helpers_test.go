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

import "testing"

// testActions defines the action vocabulary shared by the aggregator
// tests.
type testActions struct {
	set      *ActionSet
	main     int
	dbQuery  int
	cacheHit int
}

func newTestActions() testActions {
	set := NewActionSet()
	return testActions{
		set:      set,
		main:     set.DefineAction("main"),
		dbQuery:  set.DefineAction("db_query"),
		cacheHit: set.DefineAction("cache_hit"),
	}
}

// newDurationTree builds a tree whose root is one main node spanning all
// given durations, with one db_query child per duration, started
// back-to-back at time 0.
func newDurationTree(t *testing.T, a testActions, durations ...int64) *CallTree {
	t.Helper()
	tree := NewCallTree(a.set)
	var total int64
	for _, d := range durations {
		total += d
	}
	root := tree.AddNode(NoNode, a.main, 0, total)
	var at int64
	for _, d := range durations {
		tree.AddNode(root, a.dbQuery, at, at+d)
		at += d
	}
	return tree
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}
