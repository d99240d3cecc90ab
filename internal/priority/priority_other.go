//go:build !linux && !windows && !darwin

package priority

// Elevate is a no-op on platforms without a scheduling fast path.
func Elevate() error { return nil }
