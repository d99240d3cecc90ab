package gamepad

import (
	"reflect"
	"testing"

	"github.com/jupiterrider/purego-sdl3/sdl"
)

func TestHatTransitions(t *testing.T) {
	tests := []struct {
		name string
		prev uint8
		next uint8
		want []Event
	}{
		{
			name: "centered to up",
			prev: 0, next: hatUp,
			want: []Event{{Kind: EventButtonDown, Button: ButtonDPadUp, Value: 1.0}},
		},
		{
			name: "up released",
			prev: hatUp, next: 0,
			want: []Event{{Kind: EventButtonUp, Button: ButtonDPadUp}},
		},
		{
			name: "up to up-right adds right only",
			prev: hatUp, next: hatUp | hatRight,
			want: []Event{{Kind: EventButtonDown, Button: ButtonDPadRight, Value: 1.0}},
		},
		{
			name: "up to down releases and presses",
			prev: hatUp, next: hatDown,
			want: []Event{
				{Kind: EventButtonUp, Button: ButtonDPadUp},
				{Kind: EventButtonDown, Button: ButtonDPadDown, Value: 1.0},
			},
		},
		{
			name: "diagonal released",
			prev: hatDown | hatLeft, next: 0,
			want: []Event{
				{Kind: EventButtonUp, Button: ButtonDPadDown},
				{Kind: EventButtonUp, Button: ButtonDPadLeft},
			},
		},
		{
			name: "no change",
			prev: hatLeft, next: hatLeft,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hatTransitions(tt.prev, tt.next)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("hatTransitions(%#02x, %#02x) = %v, want %v", tt.prev, tt.next, got, tt.want)
			}
		})
	}
}

// testJoystick wires a synthetic joystick into a Source so translation can
// be exercised without SDL.
func testJoystick(s *Source, id int32, mapping *DeviceMapping) {
	info := &joystickInfo{
		mapping:  mapping,
		name:     "test pad",
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
	s.joysticks[sdl.JoystickID(id)] = info
	s.order = append(s.order, sdl.JoystickID(id))
}

func drainPending(s *Source) []Event {
	evs := s.pending
	s.pending = nil
	return evs
}

func TestTriggerEdgeDetection(t *testing.T) {
	s := NewSource()
	testJoystick(s, 1, genericMapping)

	// Raw trigger axis 5 (right trigger), range -32768..32767.
	steps := []struct {
		name string
		raw  int16
		want []EventKind
	}{
		{"released at rest", -32768, nil},
		{"below half travel", -1000, nil},
		{"crosses threshold", 20000, []EventKind{EventButtonDown}},
		{"stays pressed", 32767, nil},
		{"crosses back", -32768, []EventKind{EventButtonUp}},
		{"repeat release", -32768, nil},
	}
	for _, st := range steps {
		s.translateAxis(1, 5, st.raw)
		got := drainPending(s)
		if len(got) != len(st.want) {
			t.Fatalf("%s: raw %d produced %d events, want %d", st.name, st.raw, len(got), len(st.want))
		}
		for i, ev := range got {
			if ev.Kind != st.want[i] {
				t.Fatalf("%s: event %d kind = %v, want %v", st.name, i, ev.Kind, st.want[i])
			}
			if ev.Button != ButtonRightTrigger {
				t.Fatalf("%s: event %d button = %v, want %v", st.name, i, ev.Button, ButtonRightTrigger)
			}
		}
	}
}

func TestTranslateButtonUsesDeviceMapping(t *testing.T) {
	s := NewSource()
	testJoystick(s, 2, playstationMapping)

	s.translateButton(2, 9, true) // L1 on playstation layout
	evs := drainPending(s)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	if evs[0].Kind != EventButtonDown || evs[0].Button != ButtonLeftBumper {
		t.Fatalf("event = %+v, want left bumper down", evs[0])
	}

	// Raw index with no table entry translates to nothing.
	s.translateButton(2, 14, true)
	if evs := drainPending(s); len(evs) != 0 {
		t.Fatalf("unmapped index produced %v", evs)
	}

	// Unknown joystick ids are ignored entirely.
	s.translateButton(99, 0, true)
	if evs := drainPending(s); len(evs) != 0 {
		t.Fatalf("unknown joystick produced %v", evs)
	}
}

func TestTranslateStickAxis(t *testing.T) {
	s := NewSource()
	testJoystick(s, 3, xboxMapping)

	s.translateAxis(3, 0, 32767)
	evs := drainPending(s)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	ev := evs[0]
	if ev.Kind != EventAxisMove || ev.Axis != AxisLeftX {
		t.Fatalf("event = %+v, want left-stick-x move", ev)
	}
	if ev.Value != 1.0 {
		t.Fatalf("value = %v, want 1.0", ev.Value)
	}

	// Raw Y axes grow downward; the mapping inverts them so positive means up.
	s.translateAxis(3, 1, -32768)
	evs = drainPending(s)
	if len(evs) != 1 || evs[0].Axis != AxisLeftY {
		t.Fatalf("events = %+v, want one left-stick-y move", evs)
	}
	if evs[0].Value != 1.0 {
		t.Fatalf("inverted value = %v, want 1.0", evs[0].Value)
	}
}

func TestFirstWithoutControllers(t *testing.T) {
	s := NewSource()
	if _, ok := s.First(); ok {
		t.Fatal("empty source reported a first controller")
	}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		button Button
		want   string
	}{
		{ButtonSouth, "south"},
		{ButtonDPadUp, "dpad-up"},
		{ButtonLeftBumper, "left-bumper"},
		{ButtonRightTrigger, "right-trigger"},
		{ButtonSelect, "select"},
		{Button(0xFF), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.button.String(); got != tt.want {
			t.Fatalf("Button(%d).String() = %q, want %q", tt.button, got, tt.want)
		}
	}
}

func TestAxisString(t *testing.T) {
	tests := []struct {
		axis Axis
		want string
	}{
		{AxisLeftX, "left-stick-x"},
		{AxisRightY, "right-stick-y"},
		{Axis(0xFF), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.axis.String(); got != tt.want {
			t.Fatalf("Axis(%d).String() = %q, want %q", tt.axis, got, tt.want)
		}
	}
}
