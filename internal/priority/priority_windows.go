//go:build windows

package priority

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const threadPriorityTimeCritical = 15

var (
	modkernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadPriority = modkernel32.NewProc("SetThreadPriority")
)

// Elevate moves the process into the realtime priority class and the
// calling thread to time-critical priority.
func Elevate() error {
	if err := windows.SetPriorityClass(windows.CurrentProcess(), windows.REALTIME_PRIORITY_CLASS); err != nil {
		return fmt.Errorf("SetPriorityClass: %w", err)
	}

	ret, _, err := procSetThreadPriority.Call(uintptr(windows.CurrentThread()), threadPriorityTimeCritical)
	if ret == 0 {
		return fmt.Errorf("SetThreadPriority: %w", err)
	}
	return nil
}
