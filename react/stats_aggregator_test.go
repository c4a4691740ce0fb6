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
	"testing"
)

func TestActionTimeStatsAggregator(t *testing.T) {
	actions := newTestActions()
	a := NewActionTimeStatsAggregator(actions.set, actions.dbQuery)

	// 100 db_query durations: 1, 2, ..., 100.
	for d := int64(1); d <= 100; d++ {
		a.Aggregate(newDurationTree(t, actions, d))
	}

	if got := a.Calls(); got != 100 {
		t.Fatalf("calls: got %d, want 100", got)
	}
	// The median objective allows a 5% rank error.
	if got := a.Quantile(0.5); got < 45 || got > 55 {
		t.Errorf("median estimate out of bounds: got %d, want 45..55", got)
	}
	if got := a.Quantile(0.99); got < 95 || got > 100 {
		t.Errorf("99th percentile estimate out of bounds: got %d, want 95..100", got)
	}
}

func TestActionTimeStatsAggregatorEmpty(t *testing.T) {
	actions := newTestActions()
	a := NewActionTimeStatsAggregator(actions.set, actions.dbQuery)
	if got := a.Quantile(0.5); got != 0 {
		t.Errorf("median with no observations: got %d, want 0", got)
	}
}

func TestActionTimeStatsAggregatorSerialization(t *testing.T) {
	actions := newTestActions()
	a := NewActionTimeStatsAggregator(actions.set, actions.dbQuery)
	a.Aggregate(newDurationTree(t, actions, 5, 15, 25))

	doc, err := a.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var decoded struct {
		Stats struct {
			ActionName string           `json:"action_name"`
			Calls      uint64           `json:"calls"`
			Quantiles  map[string]int64 `json:"quantiles"`
		} `json:"action_time_stats"`
	}
	if err := json.Unmarshal(doc, &decoded); err != nil {
		t.Fatalf("decoding stats document %s: %v", doc, err)
	}
	if decoded.Stats.ActionName != "db_query" {
		t.Errorf("action_name: got %q, want %q", decoded.Stats.ActionName, "db_query")
	}
	if decoded.Stats.Calls != 3 {
		t.Errorf("calls: got %d, want 3", decoded.Stats.Calls)
	}
	for _, label := range []string{"50%", "75%", "90%", "95%", "99%"} {
		if _, ok := decoded.Stats.Quantiles[label]; !ok {
			t.Errorf("quantile %q missing in %s", label, doc)
		}
	}

	// Rendering is a pure read.
	again, err := a.MarshalJSON()
	if err != nil {
		t.Fatalf("second MarshalJSON: %v", err)
	}
	if string(again) != string(doc) {
		t.Errorf("repeated serialization differs: %s vs %s", again, doc)
	}
}
