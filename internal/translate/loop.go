// Package translate turns gamepad events into synthesized keyboard and
// mouse input. The Loop polls its source at a fixed interval, drains every
// queued event, and drives the sink according to the fixed keymap.
package translate

import (
	"context"
	"fmt"
	"log"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/jacobdcastro/controller2keys/internal/gamepad"
	"github.com/jacobdcastro/controller2keys/internal/inject"
)

const (
	defaultPollInterval = 4 * time.Millisecond
	defaultDeadzone     = 0.15
	defaultPointerSpeed = 50.0
)

// Source supplies typed gamepad events. Implemented by gamepad.Source;
// the loop owns the OS thread all source calls run on.
type Source interface {
	Open() error
	Close()
	First() (gamepad.ControllerID, bool)
	Poll() (gamepad.Event, bool)
}

// Options tunes the translation loop. Zero PollInterval and PointerSpeed
// fall back to defaults. Deadzone defaults only when negative: zero is a
// valid setting that disables the deadzone.
type Options struct {
	PollInterval time.Duration
	Deadzone     float64
	PointerSpeed float64
	Verbose      bool
	// Ready runs once on the loop thread right after the source opens.
	Ready func()
}

// Loop is the translation engine.
type Loop struct {
	src   Source
	sink  inject.Synthesizer
	keys  keymap
	pairs map[gamepad.Axis]axisPair

	interval time.Duration
	deadzone float64
	speed    float64
	verbose  bool
	ready    func()

	active    gamepad.ControllerID
	hasActive bool

	// Bookkeeping for cleanup only. It never changes what gets emitted.
	heldKeys  map[inject.Key]bool
	heldMouse map[inject.MouseButton]bool

	paused    atomic.Bool
	wasPaused bool
}

func New(src Source, sink inject.Synthesizer, opts Options) *Loop {
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	if opts.Deadzone < 0 {
		opts.Deadzone = defaultDeadzone
	}
	if opts.PointerSpeed <= 0 {
		opts.PointerSpeed = defaultPointerSpeed
	}
	return &Loop{
		src:       src,
		sink:      sink,
		keys:      newKeymap(),
		pairs:     axisPairs(),
		interval:  opts.PollInterval,
		deadzone:  opts.Deadzone,
		speed:     opts.PointerSpeed,
		verbose:   opts.Verbose,
		ready:     opts.Ready,
		heldKeys:  make(map[inject.Key]bool),
		heldMouse: make(map[inject.MouseButton]bool),
	}
}

// Run opens the source and translates until ctx is cancelled. SDL wants
// open, poll and close on a single OS thread, so Run locks itself to the
// current one. On the way out every held key and mouse button is released
// so no input stays stuck after shutdown.
func (l *Loop) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := l.src.Open(); err != nil {
		return fmt.Errorf("open event source: %w", err)
	}
	defer l.src.Close()
	defer l.releaseAll()

	if l.ready != nil {
		l.ready()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		l.tick()
		time.Sleep(l.interval)
	}
}

// SetPaused pauses or resumes translation. While paused the loop keeps
// draining the source so connect bookkeeping stays fresh, but discards
// input; held keys are released on the transition into pause. Safe to call
// from any goroutine.
func (l *Loop) SetPaused(p bool) {
	l.paused.Store(p)
}

func (l *Loop) tick() {
	if l.paused.Load() != l.wasPaused {
		l.wasPaused = !l.wasPaused
		if l.wasPaused {
			log.Println("Translation paused")
			l.releaseAll()
		} else {
			log.Println("Translation resumed")
		}
	}

	if !l.hasActive {
		if id, ok := l.src.First(); ok {
			l.active = id
			l.hasActive = true
			log.Printf("Active controller: id=%d", id)
		}
	}

	for {
		ev, ok := l.src.Poll()
		if !ok {
			return
		}
		l.handleEvent(ev)
	}
}

func (l *Loop) handleEvent(ev gamepad.Event) {
	switch ev.Kind {
	case gamepad.EventConnected:
		return
	case gamepad.EventDisconnected:
		if l.hasActive && ev.Controller == l.active {
			log.Println("Active controller disconnected, releasing held input")
			l.hasActive = false
			l.releaseAll()
		}
		return
	}

	if l.wasPaused {
		return
	}

	switch ev.Kind {
	case gamepad.EventButtonDown:
		l.buttonDown(ev.Button)
	case gamepad.EventButtonUp:
		l.buttonUp(ev.Button)
	case gamepad.EventAxisMove:
		l.axisMove(ev.Axis, ev.Value)
	}
}

func (l *Loop) buttonDown(b gamepad.Button) {
	switch b {
	case gamepad.ButtonLeftBumper:
		log.Printf("Button %v: scroll -1", b)
		l.sink.Scroll(-1)
		return
	case gamepad.ButtonRightBumper:
		log.Printf("Button %v: scroll +1", b)
		l.sink.Scroll(1)
		return
	}

	if key, ok := l.keys.buttonKeys[b]; ok {
		log.Printf("Button %v down: key %v", b, key)
		l.pressKey(key)
		return
	}
	if mb, ok := l.keys.buttonMouse[b]; ok {
		log.Printf("Button %v down: mouse %v", b, mb)
		l.pressMouse(mb)
	}
}

func (l *Loop) buttonUp(b gamepad.Button) {
	if key, ok := l.keys.buttonKeys[b]; ok {
		log.Printf("Button %v up: key %v", b, key)
		l.releaseKey(key)
		return
	}
	if mb, ok := l.keys.buttonMouse[b]; ok {
		log.Printf("Button %v up: mouse %v", b, mb)
		l.releaseMouse(mb)
	}
}

func (l *Loop) axisMove(axis gamepad.Axis, v float64) {
	if l.verbose {
		log.Printf("Axis %v = %+.2f", axis, v)
	}

	if pair, ok := l.pairs[axis]; ok {
		l.digitalPair(pair, v)
		return
	}

	switch axis {
	case gamepad.AxisRightX:
		l.pointer(v, false)
	case gamepad.AxisRightY:
		l.pointer(v, true)
	}
}

// digitalPair emulates two opposing keys from one stick axis. A new press
// goes down before the opposite key is released so a fast reversal never
// passes through a state with neither key held.
func (l *Loop) digitalPair(pair axisPair, v float64) {
	switch d := gamepad.ApplyDeadzone(v, l.deadzone); {
	case d > 0:
		l.pressKey(pair.positive)
		l.releaseKey(pair.negative)
	case d < 0:
		l.pressKey(pair.negative)
		l.releaseKey(pair.positive)
	default:
		l.releaseKey(pair.positive)
		l.releaseKey(pair.negative)
	}
}

// pointer moves the mouse cursor proportionally to stick deflection.
// Positive vertical deflection means stick up, which moves the cursor up.
func (l *Loop) pointer(v float64, vertical bool) {
	if gamepad.ApplyDeadzone(v, l.deadzone) == 0 {
		return
	}

	var dx, dy int
	if vertical {
		dy = int(math.Round(-v * l.speed))
	} else {
		dx = int(math.Round(v * l.speed))
	}
	if l.verbose {
		log.Printf("Pointer move dx=%d dy=%d", dx, dy)
	}
	l.sink.MouseMove(dx, dy)
}

func (l *Loop) pressKey(k inject.Key) {
	l.sink.KeyDown(k)
	l.heldKeys[k] = true
}

func (l *Loop) releaseKey(k inject.Key) {
	l.sink.KeyUp(k)
	delete(l.heldKeys, k)
}

func (l *Loop) pressMouse(b inject.MouseButton) {
	l.sink.MouseDown(b)
	l.heldMouse[b] = true
}

func (l *Loop) releaseMouse(b inject.MouseButton) {
	l.sink.MouseUp(b)
	delete(l.heldMouse, b)
}

func (l *Loop) releaseAll() {
	for k := range l.heldKeys {
		l.releaseKey(k)
	}
	for b := range l.heldMouse {
		l.releaseMouse(b)
	}
}
