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

// Package react summarizes recorded call trees into reports.
//
// A CallTree is one recorded execution: a tree of nodes, each tagged with
// an action code and a start/stop timestamp. Aggregators consume call
// trees one at a time and accumulate summaries; each aggregator renders
// its summary as a JSON document.
//
// The central aggregator family is built around Histogram, an
// N-dimensional frequency grid over caller-supplied bucket boundaries
// ("ticks"). A HistogramUpdater strategy extracts measurements from a
// call tree and routes them into the histogram; HistogramAggregator ties
// one histogram to one updater, and BatchHistogramAggregator drives many
// of them over the same tree while computing the action code index only
// once.
//
// Aggregators are not synchronized internally. One aggregation pass must
// have exclusive access to an aggregator; updaters are read-only after
// construction and may be shared freely.
package react
