package tray

import (
	"log"
	"sync"
	"sync/atomic"

	"fyne.io/systray"
)

// ShutdownFunc is called when "Exit" is clicked
type ShutdownFunc func()

// PauseFunc is called with the new state when the pause item is toggled
type PauseFunc func(paused bool)

// Tray manages the system tray icon and menu
type Tray struct {
	shutdownFunc ShutdownFunc
	pauseFunc    PauseFunc
	once         sync.Once
	shuttingDown atomic.Bool
	menuPause    *systray.MenuItem
	menuExit     *systray.MenuItem
}

// New creates a new Tray instance
func New(shutdownFn ShutdownFunc, pauseFn PauseFunc) *Tray {
	return &Tray{
		shutdownFunc: shutdownFn,
		pauseFunc:    pauseFn,
	}
}

// Run initializes and runs the system tray (blocks until Quit())
func (t *Tray) Run(iconData []byte) {
	systray.Run(func() {
		t.onReady(iconData)
	}, func() {
		t.onExit()
	})
}

// onReady is called when the tray is ready
func (t *Tray) onReady(iconData []byte) {
	if iconData != nil {
		systray.SetIcon(iconData)
	}
	systray.SetTitle("controller2keys")
	systray.SetTooltip("controller2keys - gamepad to keyboard and mouse")

	t.menuPause = systray.AddMenuItemCheckbox("Pause translation", "Stop synthesizing input until resumed", false)
	t.menuExit = systray.AddMenuItem("Exit", "Quit application")

	// Handle menu clicks in separate goroutines to prevent blocking
	go t.handleMenuClicks()

	log.Println("System tray initialized")
}

// handleMenuClicks processes menu item clicks without blocking
func (t *Tray) handleMenuClicks() {
	for {
		select {
		case <-t.menuPause.ClickedCh:
			if t.shuttingDown.Load() {
				continue
			}
			if t.menuPause.Checked() {
				t.menuPause.Uncheck()
				t.pauseFunc(false)
			} else {
				t.menuPause.Check()
				t.pauseFunc(true)
			}
		case <-t.menuExit.ClickedCh:
			if t.shuttingDown.CompareAndSwap(false, true) {
				t.once.Do(t.shutdownFunc)
				systray.Quit()
				return
			}
		}
	}
}

// onExit is called when the tray is exiting
func (t *Tray) onExit() {
	t.shuttingDown.Store(true)
	log.Println("System tray exiting")
}
