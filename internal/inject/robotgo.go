package inject

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// robotgo key tokens for each Key.
var robotgoKeys = map[Key]string{
	KeySpace:   "space",
	KeyShift:   "shift",
	KeyControl: "ctrl",
	KeyTab:     "tab",
	KeyEscape:  "esc",
	KeyF5:      "f5",
	KeySlash:   "/",
	KeyA:       "a",
	KeyB:       "b",
	KeyD:       "d",
	KeyE:       "e",
	KeyQ:       "q",
	KeyS:       "s",
	KeyV:       "v",
	KeyW:       "w",
}

type robotgoSynth struct{}

func newRobotgo() (Synthesizer, error) {
	return &robotgoSynth{}, nil
}

func (r *robotgoSynth) KeyDown(k Key) error {
	tok, ok := robotgoKeys[k]
	if !ok {
		return fmt.Errorf("no robotgo token for key %v", k)
	}
	return robotgo.KeyDown(tok)
}

func (r *robotgoSynth) KeyUp(k Key) error {
	tok, ok := robotgoKeys[k]
	if !ok {
		return fmt.Errorf("no robotgo token for key %v", k)
	}
	return robotgo.KeyUp(tok)
}

func (r *robotgoSynth) MouseDown(b MouseButton) error {
	return robotgo.Toggle(b.String())
}

func (r *robotgoSynth) MouseUp(b MouseButton) error {
	return robotgo.Toggle(b.String(), "up")
}

func (r *robotgoSynth) MouseMove(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}

func (r *robotgoSynth) Scroll(units int) error {
	robotgo.Scroll(0, units)
	return nil
}

func (r *robotgoSynth) Close() error {
	return nil
}
