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

// Aggregator consumes call trees one at a time and renders an accumulated
// summary document. All aggregator types in this package satisfy it, so a
// report driver can run them uniformly.
//
// Aggregate must not be called concurrently on the same aggregator, and
// WriteJSON must not run while an Aggregate on the same aggregator is in
// progress. Serialization itself never mutates aggregator state.
type Aggregator interface {
	Aggregate(tree *CallTree)
	WriteJSON(s *jsoniter.Stream)
}

// Tick labels start with "<"; HTML escaping would turn that into <,
// breaking downstream report consumers.
var jsonAPI = jsoniter.Config{EscapeHTML: false}.Froze()

// marshalStream runs a stream writer against a fresh buffer and returns
// the rendered document.
func marshalStream(write func(*jsoniter.Stream)) ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)
	write(stream)
	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}
