//go:build !windows

// Package console detects whether the process was started from a terminal.
// Off Windows there is nothing to detect: stdout goes wherever the shell
// put it and regular signal handling works.
package console

// IsRunningFromConsole always reports true off Windows.
func IsRunningFromConsole() bool { return true }

// SetupHandler is a no-op off Windows.
func SetupHandler(shutdown chan struct{}) func() {
	return func() {}
}
