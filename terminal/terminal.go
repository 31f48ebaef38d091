// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/lixenwraith/termdrv/driver"
)

// outputBufferSize holds a full 256-color frame on large terminals
const outputBufferSize = 64 * 1024

// Terminal buffers driver output for one backend and manages screen entry/exit.
// Output methods are no-ops before Init and after Fini.
type Terminal struct {
	drv     *driver.Driver
	backend Backend
	writer  *bufio.Writer

	mu            sync.Mutex
	initialized   bool
	finalized     bool
	cursorVisible bool
	style         Style
	styleValid    bool
}

// New creates a terminal writing drv's sequences to backend
func New(drv *driver.Driver, backend Backend) *Terminal {
	return &Terminal{
		drv:     drv,
		backend: backend,
		writer:  bufio.NewWriterSize(backendWriter{b: backend}, outputBufferSize),
	}
}

// Init enters raw mode, switches to the alternate screen, hides the cursor
// and clears
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.writeOps(
		driver.EnterAlternateScreen{},
		driver.HideCursor{},
		driver.ResetAttributes{},
		driver.Clear{},
	)
	t.cursorVisible = false
	t.styleValid = false

	if err := t.writer.Flush(); err != nil {
		t.backend.Fini()
		return err
	}

	t.initialized = true
	return nil
}

// Fini restores attributes, cursor and primary screen, then leaves raw mode.
// Safe to call multiple times.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.writeOps(
		driver.ResetAttributes{},
		driver.ShowCursor{},
		driver.ExitAlternateScreen{},
	)
	t.writer.Flush()

	t.backend.Fini()
	t.finalized = true
}

// Driver returns the driver supplying escape sequences
func (t *Terminal) Driver() *driver.Driver {
	return t.drv
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (int, int) {
	return t.backend.Size()
}

// Emit buffers the bytes for ops
func (t *Terminal) Emit(ops ...driver.Op) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() {
		return
	}
	t.writeOps(ops...)
}

// Print buffers text at the cursor in the current style
func (t *Terminal) Print(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() {
		return
	}
	t.writer.WriteString(s)
}

// MoveCursor positions cursor (0-indexed), clamped to the screen
func (t *Terminal) MoveCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() {
		return
	}

	w, h := t.backend.Size()
	x = max(0, min(x, w-1))
	y = max(0, min(y, h-1))

	t.writeOps(driver.SetCursorPosition{Column: x, Row: y})
}

// SetCursorVisible shows/hides cursor
func (t *Terminal) SetCursorVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() || t.cursorVisible == visible {
		return
	}
	t.cursorVisible = visible

	if visible {
		t.writeOps(driver.ShowCursor{})
	} else {
		t.writeOps(driver.HideCursor{})
	}
}

// SetStyle switches rendition for subsequent Print calls; unchanged styles emit nothing
func (t *Terminal) SetStyle(s Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() || (t.styleValid && t.style == s) {
		return
	}
	t.writeOps(s.ops()...)
	t.style = s
	t.styleValid = true
}

// Clear resets attributes and erases the screen
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() {
		return
	}
	t.writeOps(driver.ResetAttributes{}, driver.Clear{})
	t.styleValid = false
}

// Flush writes buffered output to the backend
func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active() {
		return nil
	}
	return t.writer.Flush()
}

// active must be called with mu held
func (t *Terminal) active() bool {
	return t.initialized && !t.finalized
}

// writeOps must be called with mu held
func (t *Terminal) writeOps(ops ...driver.Op) {
	for _, op := range ops {
		t.writer.Write(t.drv.Get(op))
	}
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally.
// A nil drv falls back to the process-wide capability database.
func EmergencyReset(w io.Writer, drv *driver.Driver) {
	if drv == nil {
		drv, _ = driver.New()
	}
	if drv != nil {
		w.Write(drv.AppendTo(nil,
			driver.ResetAttributes{},
			driver.ShowCursor{},
			driver.ExitAlternateScreen{},
		))
	}

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
