// Package inject synthesizes keyboard and mouse input on the host OS.
//
// The Synthesizer interface hides the concrete backend; New selects one by
// name. Calls are best-effort: the translation loop fires them per input
// event and never retries.
package inject

import "fmt"

// Key identifies a keyboard key the translator can press or release.
type Key uint8

const (
	KeyInvalid Key = iota
	KeySpace
	KeyShift
	KeyControl
	KeyTab
	KeyEscape
	KeyF5
	KeySlash
	KeyA
	KeyB
	KeyD
	KeyE
	KeyQ
	KeyS
	KeyV
	KeyW
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyShift:
		return "shift"
	case KeyControl:
		return "control"
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "escape"
	case KeyF5:
		return "f5"
	case KeySlash:
		return "slash"
	case KeyA:
		return "a"
	case KeyB:
		return "b"
	case KeyD:
		return "d"
	case KeyE:
		return "e"
	case KeyQ:
		return "q"
	case KeyS:
		return "s"
	case KeyV:
		return "v"
	case KeyW:
		return "w"
	}
	return "invalid"
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
)

func (b MouseButton) String() string {
	if b == MouseRight {
		return "right"
	}
	return "left"
}

// Synthesizer injects synthesized keyboard and mouse input.
type Synthesizer interface {
	KeyDown(k Key) error
	KeyUp(k Key) error
	MouseDown(b MouseButton) error
	MouseUp(b MouseButton) error
	// MouseMove moves the pointer relative to its current position.
	// Positive dy moves down (screen coordinates).
	MouseMove(dx, dy int) error
	// Scroll scrolls the wheel vertically; positive units scroll up.
	Scroll(units int) error
	Close() error
}

// New returns the Synthesizer for the named backend. "auto" (and the empty
// string) resolve to robotgo.
func New(backend string) (Synthesizer, error) {
	switch backend {
	case "", "auto", "robotgo":
		return newRobotgo()
	case "uinput":
		return newUinput()
	}
	return nil, fmt.Errorf("unknown injection backend %q", backend)
}
