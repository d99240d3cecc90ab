package gamepad

import "time"

// ControllerID identifies an attached controller for the lifetime of its
// connection. Values reuse the SDL joystick instance id.
type ControllerID int32

// Button is a logical controller button, independent of the raw index a
// particular device reports for it.
type Button uint8

const (
	ButtonInvalid Button = iota
	ButtonSouth
	ButtonEast
	ButtonWest
	ButtonNorth
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonLeftBumper
	ButtonRightBumper
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonLeftThumb
	ButtonRightThumb
	ButtonSelect
	ButtonStart
	ButtonHome
)

func (b Button) String() string {
	switch b {
	case ButtonSouth:
		return "south"
	case ButtonEast:
		return "east"
	case ButtonWest:
		return "west"
	case ButtonNorth:
		return "north"
	case ButtonDPadUp:
		return "dpad-up"
	case ButtonDPadDown:
		return "dpad-down"
	case ButtonDPadLeft:
		return "dpad-left"
	case ButtonDPadRight:
		return "dpad-right"
	case ButtonLeftBumper:
		return "left-bumper"
	case ButtonRightBumper:
		return "right-bumper"
	case ButtonLeftTrigger:
		return "left-trigger"
	case ButtonRightTrigger:
		return "right-trigger"
	case ButtonLeftThumb:
		return "left-thumb"
	case ButtonRightThumb:
		return "right-thumb"
	case ButtonSelect:
		return "select"
	case ButtonStart:
		return "start"
	case ButtonHome:
		return "home"
	}
	return "invalid"
}

// Axis is a logical stick axis. Values are normalized to [-1, 1] with
// positive Y meaning the stick is pushed away from the user.
type Axis uint8

const (
	AxisInvalid Axis = iota
	AxisLeftX
	AxisLeftY
	AxisRightX
	AxisRightY
)

func (a Axis) String() string {
	switch a {
	case AxisLeftX:
		return "left-stick-x"
	case AxisLeftY:
		return "left-stick-y"
	case AxisRightX:
		return "right-stick-x"
	case AxisRightY:
		return "right-stick-y"
	}
	return "invalid"
}

// EventKind discriminates Event payloads.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventButtonDown
	EventButtonUp
	EventAxisMove
	EventConnected
	EventDisconnected
)

// Event is one observation from the event source: a logical button
// transition, a normalized axis motion, or a connection change.
//
// Button is valid for EventButtonDown/EventButtonUp, Axis for
// EventAxisMove. Value carries the axis position in [-1, 1] or the button
// strength in [0, 1]. When records queue time and is informational only.
type Event struct {
	Controller ControllerID
	Kind       EventKind
	Button     Button
	Axis       Axis
	Value      float64
	When       time.Time
}
