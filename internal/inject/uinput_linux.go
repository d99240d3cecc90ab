//go:build linux

package inject

import (
	"fmt"

	"github.com/bendahl/uinput"
)

// evdev key codes for each Key.
var uinputKeys = map[Key]int{
	KeySpace:   uinput.KeySpace,
	KeyShift:   uinput.KeyLeftshift,
	KeyControl: uinput.KeyLeftctrl,
	KeyTab:     uinput.KeyTab,
	KeyEscape:  uinput.KeyEsc,
	KeyF5:      uinput.KeyF5,
	KeySlash:   uinput.KeySlash,
	KeyA:       uinput.KeyA,
	KeyB:       uinput.KeyB,
	KeyD:       uinput.KeyD,
	KeyE:       uinput.KeyE,
	KeyQ:       uinput.KeyQ,
	KeyS:       uinput.KeyS,
	KeyV:       uinput.KeyV,
	KeyW:       uinput.KeyW,
}

// uinputSynth feeds virtual evdev devices. Works on a bare console, no X11
// or Wayland session required.
type uinputSynth struct {
	keyboard uinput.Keyboard
	mouse    uinput.Mouse
}

func newUinput() (Synthesizer, error) {
	kb, err := uinput.CreateKeyboard("/dev/uinput", []byte("controller2keys keyboard"))
	if err != nil {
		return nil, fmt.Errorf("create virtual keyboard: %w", err)
	}
	mouse, err := uinput.CreateMouse("/dev/uinput", []byte("controller2keys mouse"))
	if err != nil {
		kb.Close()
		return nil, fmt.Errorf("create virtual mouse: %w", err)
	}
	return &uinputSynth{keyboard: kb, mouse: mouse}, nil
}

func (u *uinputSynth) KeyDown(k Key) error {
	code, ok := uinputKeys[k]
	if !ok {
		return fmt.Errorf("no evdev code for key %v", k)
	}
	return u.keyboard.KeyDown(code)
}

func (u *uinputSynth) KeyUp(k Key) error {
	code, ok := uinputKeys[k]
	if !ok {
		return fmt.Errorf("no evdev code for key %v", k)
	}
	return u.keyboard.KeyUp(code)
}

func (u *uinputSynth) MouseDown(b MouseButton) error {
	if b == MouseRight {
		return u.mouse.RightPress()
	}
	return u.mouse.LeftPress()
}

func (u *uinputSynth) MouseUp(b MouseButton) error {
	if b == MouseRight {
		return u.mouse.RightRelease()
	}
	return u.mouse.LeftRelease()
}

func (u *uinputSynth) MouseMove(dx, dy int) error {
	switch {
	case dx > 0:
		if err := u.mouse.MoveRight(int32(dx)); err != nil {
			return err
		}
	case dx < 0:
		if err := u.mouse.MoveLeft(int32(-dx)); err != nil {
			return err
		}
	}
	switch {
	case dy > 0:
		if err := u.mouse.MoveDown(int32(dy)); err != nil {
			return err
		}
	case dy < 0:
		if err := u.mouse.MoveUp(int32(-dy)); err != nil {
			return err
		}
	}
	return nil
}

func (u *uinputSynth) Scroll(units int) error {
	return u.mouse.Wheel(false, int32(units))
}

func (u *uinputSynth) Close() error {
	kbErr := u.keyboard.Close()
	mouseErr := u.mouse.Close()
	if kbErr != nil {
		return kbErr
	}
	return mouseErr
}
