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

// Package report drives a set of aggregators over incoming call trees and
// renders the document the react web UI polls from the monitored process.
package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/react-monitoring/react-go/react"
)

// HTML escaping stays off so histogram tick labels ("<10") render
// literally, as in the react package.
var jsonAPI = jsoniter.Config{EscapeHTML: false}.Froze()

// Report is an ordered collection of aggregators fed from the same call
// tree stream. Like the aggregators it owns, a report is single-writer:
// one Aggregate at a time, and no rendering while one is in progress.
type Report struct {
	aggregators  []react.Aggregator
	processStats bool
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Add appends an aggregator. Insertion order is serialization order.
func (r *Report) Add(a react.Aggregator) {
	r.aggregators = append(r.aggregators, a)
}

// EnableProcessStats includes a self-stats block (cpu, memory, fds, start
// time) in the rendered document. Where process stats cannot be read the
// block is omitted; that is not an error.
func (r *Report) EnableProcessStats() {
	r.processStats = true
}

// Aggregate feeds one call tree to every aggregator in insertion order.
func (r *Report) Aggregate(tree *react.CallTree) {
	for _, a := range r.aggregators {
		a.Aggregate(tree)
	}
}

// WriteJSON renders the report document.
func (r *Report) WriteJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	s.WriteObjectField("call_tree")
	s.WriteObjectStart()
	s.WriteObjectField("react_aggregator")
	s.WriteArrayStart()
	for i, a := range r.aggregators {
		if i > 0 {
			s.WriteMore()
		}
		a.WriteJSON(s)
	}
	s.WriteArrayEnd()
	if r.processStats {
		if stats, err := readProcessStats(); err == nil {
			s.WriteMore()
			s.WriteObjectField("process_stats")
			stats.writeJSON(s)
		}
	}
	s.WriteObjectEnd()
	s.WriteObjectEnd()
}

// MarshalJSON renders the report document as a byte slice.
func (r *Report) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)
	r.WriteJSON(stream)
	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// WriteTo renders the report document to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	doc, err := r.MarshalJSON()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(doc)
	return int64(n), err
}
