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

// Package promexport bridges react histogram aggregators into the
// Prometheus exposition format, so a monitored process can serve its
// action-time distributions to a Prometheus scraper alongside the react
// report.
package promexport

import (
	"fmt"
	"io"

	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	dto "github.com/prometheus/client_model/go"

	"github.com/react-monitoring/react-go/react"
)

// MetricFamily converts a one-dimensional histogram aggregator into a
// Prometheus histogram family. React bucket counts become cumulative and
// the sentinel bucket folds into the implicit +Inf bucket carried by
// sample_count.
//
// React tick boundaries are exclusive ("< tick") while Prometheus bounds
// are inclusive ("le"); observations exactly on a boundary are therefore
// attributed to the bucket above it. The react histogram tracks no sum of
// observations, so sample_sum is reported as zero.
func MetricFamily(name, help string, a *react.HistogramAggregator) (*dto.MetricFamily, error) {
	h := a.Histogram()
	if h.Dims() != 1 {
		return nil, fmt.Errorf(
			"promexport: histogram has %d dimensions, only one-dimensional histograms can be exported",
			h.Dims(),
		)
	}

	ticks := h.Ticks() // the last entry is the sentinel
	buckets := make([]*dto.Bucket, 0, len(ticks)-1)
	var cumulative uint64
	for i, tick := range ticks {
		cumulative += h.Get(i)
		if i == len(ticks)-1 {
			break
		}
		buckets = append(buckets, &dto.Bucket{
			CumulativeCount: proto.Uint64(cumulative),
			UpperBound:      proto.Float64(float64(tick)),
		})
	}

	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_HISTOGRAM.Enum(),
		Metric: []*dto.Metric{{
			Histogram: &dto.Histogram{
				SampleCount: proto.Uint64(cumulative),
				SampleSum:   proto.Float64(0),
				Bucket:      buckets,
			},
		}},
	}, nil
}

// WriteText encodes metric families in the text exposition format.
func WriteText(w io.Writer, families ...*dto.MetricFamily) error {
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("promexport: encoding %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
