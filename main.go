package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jacobdcastro/controller2keys/internal/config"
	"github.com/jacobdcastro/controller2keys/internal/console"
	"github.com/jacobdcastro/controller2keys/internal/gamepad"
	"github.com/jacobdcastro/controller2keys/internal/inject"
	"github.com/jacobdcastro/controller2keys/internal/priority"
	"github.com/jacobdcastro/controller2keys/internal/translate"
	"github.com/jacobdcastro/controller2keys/internal/tray"
)

// Cross-platform signal handling: use os.Interrupt on all platforms
// On Windows: os.Interrupt is sent when Ctrl+C is pressed
// On Unix: os.Interrupt is equivalent to syscall.SIGINT
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid configuration: %v", err)
	}

	consoleMode := console.IsRunningFromConsole()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	// Ctrl+C handler that keeps working while SDL holds the loop thread
	ctrlCh := make(chan struct{})
	rearmHandler := console.SetupHandler(ctrlCh)

	sink, err := inject.New(cfg.Backend)
	if err != nil {
		log.Fatalf("Input synthesizer init failed: %v", err)
	}

	src := gamepad.NewSource()
	loop := translate.New(src, sink, translate.Options{
		PollInterval: cfg.PollInterval,
		Deadzone:     cfg.Deadzone,
		PointerSpeed: cfg.PointerSpeed,
		Verbose:      cfg.Verbose,
		Ready: func() {
			// SDL replaces the console handler during init, re-arm ours.
			rearmHandler()
			if err := priority.Elevate(); err != nil {
				log.Printf("Priority elevation failed (continuing): %v", err)
			} else {
				log.Println("Scheduling priority elevated")
			}
		},
	})

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- loop.Run(ctx)
	}()

	log.Println("controller2keys started")

	// Channel for tray-triggered shutdown
	shutdownRequested := make(chan struct{})

	// Initialize system tray on Windows only
	if runtime.GOOS == "windows" && cfg.Tray {
		go func() {
			t := tray.New(func() {
				close(shutdownRequested)
			}, loop.SetPaused)
			t.Run(tray.Icon())
		}()
	} else if consoleMode {
		log.Println("Press Ctrl+C to exit")
	}

	// Wait for a shutdown signal, tray request, or loop failure
	var loopErr error
	select {
	case <-sigCh:
		log.Println("Shutting down...")
		cancel()
		loopErr = <-loopDone
	case <-ctrlCh:
		log.Println("Shutting down...")
		cancel()
		loopErr = <-loopDone
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
		cancel()
		loopErr = <-loopDone
	case loopErr = <-loopDone:
		cancel()
	}

	if err := sink.Close(); err != nil {
		log.Printf("Synthesizer close error: %v", err)
	}
	if loopErr != nil {
		log.Fatalf("Translation loop failed: %v", loopErr)
	}

	log.Println("controller2keys stopped")
}
