package bridge

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/process"
)

// ServerRunning reports whether an adb server process is alive on this
// machine. Processes that vanish or deny access while being inspected are
// skipped.
func ServerRunning(ctx context.Context) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, err
	}

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if isBridgeProcess(name) {
			return true, nil
		}
	}
	return false, nil
}

func isBridgeProcess(name string) bool {
	name = strings.ToLower(name)
	return name == "adb" || name == "adb.exe"
}
