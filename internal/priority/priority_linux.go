//go:build linux

package priority

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

type schedParam struct {
	priority int32
}

// Elevate asks the kernel for round-robin real-time scheduling at the
// highest priority. Needs CAP_SYS_NICE or root.
func Elevate() error {
	max, _, errno := unix.Syscall(unix.SYS_SCHED_GET_PRIORITY_MAX, uintptr(unix.SCHED_RR), 0, 0)
	if errno != 0 {
		return fmt.Errorf("sched_get_priority_max: %w", errno)
	}

	param := schedParam{priority: int32(max)}
	_, _, errno = unix.Syscall(unix.SYS_SCHED_SETSCHEDULER, 0, uintptr(unix.SCHED_RR), uintptr(unsafe.Pointer(&param)))
	if errno != 0 {
		return fmt.Errorf("sched_setscheduler(SCHED_RR, %d): %w", param.priority, errno)
	}
	return nil
}
