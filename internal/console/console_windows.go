// Package console detects whether the process was started from a terminal
// or double-clicked, and wires Ctrl+C handling that keeps working while a
// library holds the main OS thread.
package console

import (
	"log"
	"os"
	"strings"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow      = kernel32.NewProc("GetConsoleWindow")
	procAllocConsole          = kernel32.NewProc("AllocConsole")
	procFreeConsole           = kernel32.NewProc("FreeConsole")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

const (
	ctrlCEvent     = 0
	ctrlBreakEvent = 1
)

// IsRunningFromConsole reports whether the process should behave like a
// terminal program. Launched from a terminal it keeps (or allocates) a
// console window; double-clicked from Explorer it hides any auto-created
// console and reports GUI mode.
func IsRunningFromConsole() bool {
	if hasConsoleWindow() {
		if launchedFromExplorer() {
			// Console-mode build was double-clicked. Hide the window.
			procFreeConsole.Call()
			return false
		}
		return true
	}

	if launchedFromExplorer() {
		return false
	}

	// GUI-mode build started from a terminal: give it its own console.
	procAllocConsole.Call()
	redirectStdStreams()
	return true
}

func hasConsoleWindow() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	return hwnd != 0
}

// redirectStdStreams points the std streams at the freshly allocated
// console. Go captures os.Stdout and friends at startup, before the
// console existed.
func redirectStdStreams() {
	stdout, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil || stdout == 0 {
		return
	}
	stderr, _ := windows.GetStdHandle(windows.STD_ERROR_HANDLE)
	stdin, _ := windows.GetStdHandle(windows.STD_INPUT_HANDLE)

	os.Stdout = os.NewFile(uintptr(stdout), "/dev/stdout")
	if stderr != 0 {
		os.Stderr = os.NewFile(uintptr(stderr), "/dev/stderr")
	}
	if stdin != 0 {
		os.Stdin = os.NewFile(uintptr(stdin), "/dev/stdin")
	}
	log.SetOutput(os.Stderr)
}

func launchedFromExplorer() bool {
	parent := parentProcessID(uint32(os.Getpid()))
	if parent == 0 {
		return false
	}
	name := processExeName(parent)
	if name == "" {
		return false
	}
	return strings.EqualFold(baseName(name), "explorer.exe")
}

// parentProcessID walks a toolhelp snapshot for the given pid's parent.
func parentProcessID(pid uint32) uint32 {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err := windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		if entry.ProcessID == pid {
			return entry.ParentProcessID
		}
	}
	return 0
}

func processExeName(pid uint32) string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err := windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		if entry.ProcessID == pid {
			return windows.UTF16ToString(entry.ExeFile[:])
		}
	}
	return ""
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '\\' || path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

type handlerState struct {
	done     atomic.Bool
	shutdown chan struct{}
	callback uintptr
}

var handler *handlerState

// SetupHandler registers a console control handler that closes shutdown on
// Ctrl+C or Ctrl+Break. Go's own signal handling can miss these while SDL
// holds the main thread. The returned func re-registers the handler; SDL
// replaces it during init, so the caller re-arms after the source opens.
func SetupHandler(shutdown chan struct{}) func() {
	handler = &handlerState{shutdown: shutdown}
	handler.callback = windows.NewCallback(func(ctrlType uint32) uintptr {
		if ctrlType == ctrlCEvent || ctrlType == ctrlBreakEvent {
			if handler.done.CompareAndSwap(false, true) {
				close(handler.shutdown)
			}
			return 1
		}
		return 0
	})

	register := func() {
		if ret, _, _ := procSetConsoleCtrlHandler.Call(handler.callback, 1); ret == 0 {
			log.Println("Failed to register console control handler")
		}
	}
	register()
	return register
}
