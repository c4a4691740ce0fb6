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
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
	jsoniter "github.com/json-iterator/go"
)

// NodeID identifies a node within one CallTree.
type NodeID int

// NoNode is the parent passed to AddNode when creating a tree's root.
const NoNode NodeID = -1

// CodeToNodes maps an action code to the nodes carrying it, in node
// insertion order. It is the index shared across aggregators when a batch
// drives many of them over one tree.
type CodeToNodes map[int][]NodeID

type callNode struct {
	actionCode int
	startTime  int64
	stopTime   int64
	parent     NodeID
	children   []NodeID
}

// CallTree is one recorded execution: a rooted tree of timed, action-coded
// nodes. Trees are built once by the recorder and read-only afterwards.
type CallTree struct {
	actions *ActionSet
	nodes   []callNode
	root    NodeID
}

// NewCallTree returns an empty tree whose action codes resolve through
// actions.
func NewCallTree(actions *ActionSet) *CallTree {
	return &CallTree{actions: actions, root: NoNode}
}

// AddNode appends a node and returns its id. Pass NoNode as parent for the
// root; a tree has exactly one root.
func (t *CallTree) AddNode(parent NodeID, actionCode int, startTime, stopTime int64) NodeID {
	if parent == NoNode {
		if t.root != NoNode {
			panic("react: call tree already has a root")
		}
	} else {
		t.mustNode(parent)
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, callNode{
		actionCode: actionCode,
		startTime:  startTime,
		stopTime:   stopTime,
		parent:     parent,
	})
	if parent == NoNode {
		t.root = id
	} else {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	return id
}

func (t *CallTree) mustNode(id NodeID) {
	if id < 0 || int(id) >= len(t.nodes) {
		panic("react: call tree node " + strconv.Itoa(int(id)) + " does not exist")
	}
}

// Root returns the root node id, or NoNode for an empty tree.
func (t *CallTree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes.
func (t *CallTree) Len() int {
	return len(t.nodes)
}

// ActionCode returns the action code of a node.
func (t *CallTree) ActionCode(id NodeID) int {
	t.mustNode(id)
	return t.nodes[id].actionCode
}

// StartTime returns the start timestamp of a node.
func (t *CallTree) StartTime(id NodeID) int64 {
	t.mustNode(id)
	return t.nodes[id].startTime
}

// StopTime returns the stop timestamp of a node.
func (t *CallTree) StopTime(id NodeID) int64 {
	t.mustNode(id)
	return t.nodes[id].stopTime
}

// Children returns the direct children of a node in insertion order. The
// returned slice is owned by the tree and must not be modified.
func (t *CallTree) Children(id NodeID) []NodeID {
	t.mustNode(id)
	return t.nodes[id].children
}

// Actions returns the registry this tree's codes resolve through.
func (t *CallTree) Actions() *ActionSet {
	return t.actions
}

// CodeToNodeIndex builds the action code index for this tree. The index is
// built fresh on every call; callers driving many aggregators over one
// tree should build it once and hand it to AggregateIndexed (which is what
// BatchHistogramAggregator does).
func (t *CallTree) CodeToNodeIndex() CodeToNodes {
	index := make(CodeToNodes)
	for i := range t.nodes {
		code := t.nodes[i].actionCode
		index[code] = append(index[code], NodeID(i))
	}
	return index
}

// Fingerprint returns a hash identifying this tree's structure, codes and
// timestamps. Two trees with identical recorded content share a
// fingerprint regardless of how they were assembled.
func (t *CallTree) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [32]byte
	for i := range t.nodes {
		n := &t.nodes[i]
		binary.LittleEndian.PutUint64(buf[0:8], uint64(n.actionCode))
		binary.LittleEndian.PutUint64(buf[8:16], uint64(n.startTime))
		binary.LittleEndian.PutUint64(buf[16:24], uint64(n.stopTime))
		binary.LittleEndian.PutUint64(buf[24:32], uint64(n.parent))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// WriteJSON renders the tree document: its fingerprint as a hex id and the
// nested name/start_time/stop_time/actions node structure.
func (t *CallTree) WriteJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	s.WriteObjectField("id")
	s.WriteString(strconv.FormatUint(t.Fingerprint(), 16))
	if t.root != NoNode {
		s.WriteMore()
		s.WriteObjectField("actions")
		s.WriteArrayStart()
		t.writeNodeJSON(s, t.root)
		s.WriteArrayEnd()
	}
	s.WriteObjectEnd()
}

func (t *CallTree) writeNodeJSON(s *jsoniter.Stream, id NodeID) {
	n := &t.nodes[id]
	s.WriteObjectStart()
	s.WriteObjectField("name")
	s.WriteString(t.actions.ActionName(n.actionCode))
	s.WriteMore()
	s.WriteObjectField("start_time")
	s.WriteInt64(n.startTime)
	s.WriteMore()
	s.WriteObjectField("stop_time")
	s.WriteInt64(n.stopTime)
	if len(n.children) > 0 {
		s.WriteMore()
		s.WriteObjectField("actions")
		s.WriteArrayStart()
		for i, c := range n.children {
			if i > 0 {
				s.WriteMore()
			}
			t.writeNodeJSON(s, c)
		}
		s.WriteArrayEnd()
	}
	s.WriteObjectEnd()
}

// MarshalJSON renders the tree document as a byte slice.
func (t *CallTree) MarshalJSON() ([]byte, error) {
	return marshalStream(t.WriteJSON)
}
