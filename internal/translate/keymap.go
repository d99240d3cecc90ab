package translate

import (
	"github.com/jacobdcastro/controller2keys/internal/gamepad"
	"github.com/jacobdcastro/controller2keys/internal/inject"
)

// keymap holds the fixed button assignments. Buttons appear in exactly one
// table; anything in neither is ignored.
type keymap struct {
	buttonKeys  map[gamepad.Button]inject.Key
	buttonMouse map[gamepad.Button]inject.MouseButton
}

func newKeymap() keymap {
	return keymap{
		buttonKeys: map[gamepad.Button]inject.Key{
			gamepad.ButtonSouth:      inject.KeySpace,
			gamepad.ButtonEast:       inject.KeyShift,
			gamepad.ButtonWest:       inject.KeyE,
			gamepad.ButtonNorth:      inject.KeyE,
			gamepad.ButtonDPadUp:     inject.KeyF5,
			gamepad.ButtonDPadDown:   inject.KeyQ,
			gamepad.ButtonDPadLeft:   inject.KeyB,
			gamepad.ButtonDPadRight:  inject.KeySlash,
			gamepad.ButtonLeftThumb:  inject.KeyControl,
			gamepad.ButtonRightThumb: inject.KeyV,
			gamepad.ButtonSelect:     inject.KeyTab,
			gamepad.ButtonStart:      inject.KeyEscape,
		},
		buttonMouse: map[gamepad.Button]inject.MouseButton{
			gamepad.ButtonRightTrigger: inject.MouseLeft,
			gamepad.ButtonLeftTrigger:  inject.MouseRight,
		},
	}
}

// axisPair describes digital key emulation for one stick axis: positive
// deflection holds one key, negative the other.
type axisPair struct {
	positive inject.Key
	negative inject.Key
}

func axisPairs() map[gamepad.Axis]axisPair {
	return map[gamepad.Axis]axisPair{
		gamepad.AxisLeftX: {positive: inject.KeyD, negative: inject.KeyA},
		gamepad.AxisLeftY: {positive: inject.KeyW, negative: inject.KeyS},
	}
}
