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
	"encoding/json"
	"reflect"
	"testing"
)

func TestActionSet(t *testing.T) {
	set := NewActionSet()
	main := set.DefineAction("main")
	db := set.DefineAction("db_query")

	if main == db {
		t.Fatalf("codes collide: %d", main)
	}
	if got := set.ActionName(main); got != "main" {
		t.Errorf("ActionName(%d): got %q, want %q", main, got, "main")
	}
	if got := set.ActionName(db); got != "db_query" {
		t.Errorf("ActionName(%d): got %q, want %q", db, got, "db_query")
	}
	if got := set.Len(); got != 2 {
		t.Errorf("Len: got %d, want 2", got)
	}
	expectPanic(t, "ActionName", func() { set.ActionName(99) })
}

func TestCodeToNodeIndex(t *testing.T) {
	actions := newTestActions()
	tree := NewCallTree(actions.set)
	root := tree.AddNode(NoNode, actions.main, 0, 30)
	first := tree.AddNode(root, actions.dbQuery, 0, 10)
	second := tree.AddNode(root, actions.dbQuery, 10, 30)

	want := CodeToNodes{
		actions.main:    {root},
		actions.dbQuery: {first, second},
	}
	if got := tree.CodeToNodeIndex(); !reflect.DeepEqual(got, want) {
		t.Errorf("index: got %v, want %v", got, want)
	}
}

func TestCallTreeTimes(t *testing.T) {
	actions := newTestActions()
	tree := NewCallTree(actions.set)
	root := tree.AddNode(NoNode, actions.main, 7, 30)

	if got := tree.StartTime(root); got != 7 {
		t.Errorf("StartTime: got %d, want 7", got)
	}
	if got := tree.StopTime(root); got != 30 {
		t.Errorf("StopTime: got %d, want 30", got)
	}
	if got := tree.ActionCode(root); got != actions.main {
		t.Errorf("ActionCode: got %d, want %d", got, actions.main)
	}
	if got := tree.Root(); got != root {
		t.Errorf("Root: got %d, want %d", got, root)
	}
}

func TestCallTreeSingleRoot(t *testing.T) {
	actions := newTestActions()
	tree := NewCallTree(actions.set)
	tree.AddNode(NoNode, actions.main, 0, 1)
	expectPanic(t, "AddNode", func() { tree.AddNode(NoNode, actions.main, 0, 1) })
}

func TestFingerprint(t *testing.T) {
	actions := newTestActions()

	build := func(durations ...int64) *CallTree {
		return newDurationTree(t, actions, durations...)
	}

	if build(5, 15).Fingerprint() != build(5, 15).Fingerprint() {
		t.Errorf("identical trees disagree on fingerprint")
	}
	if build(5, 15).Fingerprint() == build(5, 16).Fingerprint() {
		t.Errorf("different trees share a fingerprint")
	}
}

func TestCallTreeWriteJSON(t *testing.T) {
	actions := newTestActions()
	tree := NewCallTree(actions.set)
	root := tree.AddNode(NoNode, actions.main, 0, 30)
	tree.AddNode(root, actions.dbQuery, 0, 10)

	doc, err := tree.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var decoded struct {
		ID      string `json:"id"`
		Actions []struct {
			Name      string `json:"name"`
			StartTime int64  `json:"start_time"`
			StopTime  int64  `json:"stop_time"`
			Actions   []struct {
				Name      string `json:"name"`
				StartTime int64  `json:"start_time"`
				StopTime  int64  `json:"stop_time"`
			} `json:"actions"`
		} `json:"actions"`
	}
	if err := json.Unmarshal(doc, &decoded); err != nil {
		t.Fatalf("decoding tree document %s: %v", doc, err)
	}
	if decoded.ID == "" {
		t.Errorf("tree document has no id: %s", doc)
	}
	if len(decoded.Actions) != 1 || decoded.Actions[0].Name != "main" {
		t.Fatalf("unexpected root action in %s", doc)
	}
	if decoded.Actions[0].StopTime != 30 {
		t.Errorf("root stop_time: got %d, want 30", decoded.Actions[0].StopTime)
	}
	children := decoded.Actions[0].Actions
	if len(children) != 1 || children[0].Name != "db_query" || children[0].StopTime != 10 {
		t.Errorf("unexpected children in %s", doc)
	}
}
