// Copyright (c) Kilnworks. All rights reserved.
// Licensed under the MIT License.

package telemetry

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/kilnworks/kiln/internal/telemetry/events"
)

// currentProcess reads memory statistics of the running process.
type currentProcess struct {
	pid int32
}

// CurrentProcess returns the process-info collaborator for this process.
// Errors surface from MaxRSS at query time so callers can apply their own
// best-effort policy.
func CurrentProcess() events.ProcessInfo {
	return &currentProcess{pid: int32(os.Getpid())}
}

func (p *currentProcess) MaxRSS() (int64, error) {
	proc, err := process.NewProcess(p.pid)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect process %d: %w", p.pid, err)
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("failed to read memory info: %w", err)
	}
	if mem == nil {
		return 0, fmt.Errorf("memory info unavailable for process %d", p.pid)
	}

	return int64(mem.RSS), nil
}
