package gamepad

import (
	"fmt"
	"log"
	"time"

	"github.com/jupiterrider/purego-sdl3/sdl"
)

const (
	// Analog triggers report as axes; past this normalized travel they
	// count as pressed.
	triggerThreshold = 0.5

	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

type joystickInfo struct {
	joystick *sdl.Joystick
	mapping  *DeviceMapping
	name     string
	id       sdl.JoystickID

	axes     map[int32]AxisMapping
	buttons  map[int32]Button
	hat      uint8
	triggers map[Button]bool
}

// Source reads gamepad input from the SDL3 Joystick API and emits typed
// events. Open, Poll and Close must all run on the same OS thread.
type Source struct {
	joysticks map[sdl.JoystickID]*joystickInfo
	order     []sdl.JoystickID
	pending   []Event
}

func NewSource() *Source {
	return &Source{
		joysticks: make(map[sdl.JoystickID]*joystickInfo),
	}
}

// Open initializes the SDL joystick subsystem and opens any joysticks that
// are already connected.
func (s *Source) Open() error {
	if !sdl.Init(sdl.InitJoystick) {
		return fmt.Errorf("init SDL joystick subsystem: %s", sdl.GetError())
	}
	log.Println("SDL3 joystick subsystem initialized")

	for _, id := range sdl.GetJoysticks() {
		s.openJoystick(id)
	}
	return nil
}

// Close closes all opened joysticks and shuts SDL down.
func (s *Source) Close() {
	for id, info := range s.joysticks {
		sdl.CloseJoystick(info.joystick)
		delete(s.joysticks, id)
	}
	s.order = nil
	sdl.Quit()
}

// First returns the earliest-opened joystick that is still connected.
func (s *Source) First() (ControllerID, bool) {
	for _, id := range s.order {
		info, ok := s.joysticks[id]
		if !ok {
			continue
		}
		if sdl.JoystickConnected(info.joystick) {
			return ControllerID(id), true
		}
	}
	return 0, false
}

// Poll returns the next typed event, pumping the SDL queue as needed. It
// never blocks; ok is false once both the internal queue and the SDL queue
// are empty. SDL events that translate to nothing are skipped so a single
// drain loop still empties the queue.
func (s *Source) Poll() (Event, bool) {
	for {
		if len(s.pending) > 0 {
			ev := s.pending[0]
			s.pending = s.pending[1:]
			return ev, true
		}

		var raw sdl.Event
		if !sdl.PollEvent(&raw) {
			return Event{}, false
		}
		s.translate(&raw)
	}
}

func (s *Source) translate(raw *sdl.Event) {
	switch raw.Type() {
	case sdl.EventJoystickAdded:
		devEvent := raw.JDevice()
		s.openJoystick(devEvent.Which)

	case sdl.EventJoystickRemoved:
		devEvent := raw.JDevice()
		s.removeJoystick(devEvent.Which)

	case sdl.EventJoystickButtonDown:
		be := raw.JButton()
		s.translateButton(be.Which, int32(be.Button), true)

	case sdl.EventJoystickButtonUp:
		be := raw.JButton()
		s.translateButton(be.Which, int32(be.Button), false)

	case sdl.EventJoystickAxisMotion:
		ae := raw.JAxis()
		s.translateAxis(ae.Which, int32(ae.Axis), ae.Value)

	case sdl.EventJoystickHatMotion:
		he := raw.JHat()
		s.translateHat(he.Which, he.Hat, he.Value)
	}
}

func (s *Source) openJoystick(instanceID sdl.JoystickID) {
	if _, exists := s.joysticks[instanceID]; exists {
		return
	}

	js := sdl.OpenJoystick(instanceID)
	if js == nil {
		log.Printf("Failed to open joystick %d: %s", instanceID, sdl.GetError())
		return
	}

	jsID := sdl.GetJoystickID(js)
	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	name := sdl.GetJoystickName(js)
	mapping := MappingFor(vendorID, productID)

	info := &joystickInfo{
		joystick: js,
		mapping:  mapping,
		name:     name,
		id:       jsID,
		axes:     make(map[int32]AxisMapping, len(mapping.Axes)),
		buttons:  make(map[int32]Button, len(mapping.Buttons)),
		triggers: make(map[Button]bool, 2),
	}
	for _, am := range mapping.Axes {
		info.axes[am.Index] = am
	}
	for _, bm := range mapping.Buttons {
		info.buttons[bm.Index] = bm.Button
	}
	s.joysticks[jsID] = info
	s.order = append(s.order, jsID)

	log.Printf("Joystick connected: %s (VID=%04X PID=%04X) mapping=%s axes=%d buttons=%d hats=%d",
		name, vendorID, productID, mapping.Name,
		sdl.GetNumJoystickAxes(js), sdl.GetNumJoystickButtons(js), sdl.GetNumJoystickHats(js))

	s.push(Event{Controller: ControllerID(jsID), Kind: EventConnected})
}

func (s *Source) removeJoystick(instanceID sdl.JoystickID) {
	info, exists := s.joysticks[instanceID]
	if !exists {
		return
	}

	log.Printf("Joystick disconnected: %s", info.name)
	sdl.CloseJoystick(info.joystick)
	delete(s.joysticks, instanceID)
	for i, id := range s.order {
		if id == instanceID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.push(Event{Controller: ControllerID(instanceID), Kind: EventDisconnected})
}

func (s *Source) translateButton(which sdl.JoystickID, index int32, down bool) {
	info, exists := s.joysticks[which]
	if !exists {
		return
	}
	btn, ok := info.buttons[index]
	if !ok {
		return
	}

	ev := Event{Controller: ControllerID(which), Kind: EventButtonUp, Button: btn}
	if down {
		ev.Kind = EventButtonDown
		ev.Value = 1.0
	}
	s.push(ev)
}

func (s *Source) translateAxis(which sdl.JoystickID, index int32, raw int16) {
	info, exists := s.joysticks[which]
	if !exists {
		return
	}
	am, ok := info.axes[index]
	if !ok {
		return
	}

	if am.IsTrigger {
		pressed := NormalizeTrigger(raw, am.RawMin, am.RawMax) > triggerThreshold
		if pressed == info.triggers[am.Trigger] {
			return
		}
		info.triggers[am.Trigger] = pressed

		ev := Event{Controller: ControllerID(which), Kind: EventButtonUp, Button: am.Trigger}
		if pressed {
			ev.Kind = EventButtonDown
			ev.Value = 1.0
		}
		s.push(ev)
		return
	}

	v := NormalizeAxis(raw)
	if am.Invert {
		v = -v
	}
	s.push(Event{Controller: ControllerID(which), Kind: EventAxisMove, Axis: am.Stick, Value: v})
}

func (s *Source) translateHat(which sdl.JoystickID, hat uint8, mask uint8) {
	info, exists := s.joysticks[which]
	if !exists || !info.mapping.HasHat || hat != 0 {
		return
	}

	for _, ev := range hatTransitions(info.hat, mask) {
		ev.Controller = ControllerID(which)
		s.push(ev)
	}
	info.hat = mask
}

// hatTransitions diffs two hat masks and returns one button event per
// direction that changed.
func hatTransitions(prev, next uint8) []Event {
	dirs := [...]struct {
		mask   uint8
		button Button
	}{
		{hatUp, ButtonDPadUp},
		{hatRight, ButtonDPadRight},
		{hatDown, ButtonDPadDown},
		{hatLeft, ButtonDPadLeft},
	}

	var evs []Event
	for _, d := range dirs {
		was := prev&d.mask != 0
		now := next&d.mask != 0
		if was == now {
			continue
		}
		if now {
			evs = append(evs, Event{Kind: EventButtonDown, Button: d.button, Value: 1.0})
		} else {
			evs = append(evs, Event{Kind: EventButtonUp, Button: d.button})
		}
	}
	return evs
}

func (s *Source) push(ev Event) {
	ev.When = time.Now()
	s.pending = append(s.pending, ev)
}
