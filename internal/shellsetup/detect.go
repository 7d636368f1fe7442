package shellsetup

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// processName is replaced in tests.
var processName = func(pid int32) (string, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return "", err
	}
	return proc.Name()
}

// DetectParentShellName reports the normalized executable name of the
// parent process, or "" when it cannot be determined.
func DetectParentShellName() string {
	return parentShellName(os.Getppid())
}

func parentShellName(ppid int) string {
	if ppid <= 0 {
		return ""
	}
	name, err := processName(int32(ppid))
	if err != nil {
		return ""
	}
	return normalizeShellName(name)
}
