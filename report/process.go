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

package report

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/procfs"
)

// processStats is the self-stats block of the monitored process, read from
// procfs at render time.
type processStats struct {
	cpuSecondsTotal     float64
	residentMemoryBytes int
	virtualMemoryBytes  uint
	openFDs             int
	startTimeSeconds    float64
}

func readProcessStats() (*processStats, error) {
	p, err := procfs.Self()
	if err != nil {
		return nil, err
	}
	stat, err := p.Stat()
	if err != nil {
		return nil, err
	}
	stats := &processStats{
		cpuSecondsTotal:     stat.CPUTime(),
		residentMemoryBytes: stat.ResidentMemory(),
		virtualMemoryBytes:  stat.VirtualMemory(),
	}
	if startTime, err := stat.StartTime(); err == nil {
		stats.startTimeSeconds = startTime
	}
	if fds, err := p.FileDescriptorsLen(); err == nil {
		stats.openFDs = fds
	}
	return stats, nil
}

func (ps *processStats) writeJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	s.WriteObjectField("cpu_seconds_total")
	s.WriteFloat64(ps.cpuSecondsTotal)
	s.WriteMore()
	s.WriteObjectField("resident_memory_bytes")
	s.WriteInt(ps.residentMemoryBytes)
	s.WriteMore()
	s.WriteObjectField("virtual_memory_bytes")
	s.WriteUint(ps.virtualMemoryBytes)
	s.WriteMore()
	s.WriteObjectField("open_fds")
	s.WriteInt(ps.openFDs)
	s.WriteMore()
	s.WriteObjectField("start_time_seconds")
	s.WriteFloat64(ps.startTimeSeconds)
	s.WriteObjectEnd()
}
