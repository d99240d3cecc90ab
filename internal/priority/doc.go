// Package priority raises scheduling priority for the translation loop.
// Elevation is best-effort: callers log a failure and carry on. Where the
// platform distinguishes thread from process (linux scheduler class,
// windows thread priority), Elevate targets the calling thread, so it runs
// on the loop's locked OS thread.
package priority
