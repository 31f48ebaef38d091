package driver

import "github.com/lixenwraith/termdrv/capability"

// Op is one terminal action. Only this package defines implementations.
type Op interface {
	capname() string
}

// EnterAlternateScreen switches to the alternate screen buffer
type EnterAlternateScreen struct{}

// ExitAlternateScreen returns to the primary screen buffer
type ExitAlternateScreen struct{}

// ShowCursor makes the cursor visible
type ShowCursor struct{}

// HideCursor makes the cursor invisible
type HideCursor struct{}

// SetCursorPosition moves the cursor to a 0-indexed cell.
// Terminals take row before column; Get handles the ordering.
type SetCursorPosition struct {
	Column int
	Row    int
}

// Clear erases the screen and homes the cursor
type Clear struct{}

// ResetAttributes turns off every text attribute and color
type ResetAttributes struct{}

// Underline starts underlined text
type Underline struct{}

// Bold starts bold text
type Bold struct{}

// Blink starts blinking text; a no-op on terminals without blink
type Blink struct{}

// Reverse starts reverse video
type Reverse struct{}

// SetForegroundColor selects a palette entry for text
type SetForegroundColor struct {
	Code uint8
}

// SetBackgroundColor selects a palette entry for the cell background
type SetBackgroundColor struct {
	Code uint8
}

func (EnterAlternateScreen) capname() string { return capability.EnterCA }
func (ExitAlternateScreen) capname() string  { return capability.ExitCA }
func (ShowCursor) capname() string           { return capability.ShowCursor }
func (HideCursor) capname() string           { return capability.HideCursor }
func (SetCursorPosition) capname() string    { return capability.SetCursor }
func (Clear) capname() string                { return capability.Clear }
func (ResetAttributes) capname() string      { return capability.AttrOff }
func (Underline) capname() string            { return capability.Underline }
func (Bold) capname() string                 { return capability.Bold }
func (Blink) capname() string                { return capability.Blink }
func (Reverse) capname() string              { return capability.Reverse }
func (SetForegroundColor) capname() string   { return capability.SetFg }
func (SetBackgroundColor) capname() string   { return capability.SetBg }

// Capname returns the capability an operation is backed by
func Capname(op Op) string {
	return op.capname()
}

// All returns one value of every operation in declaration order,
// parameterized operations at their zero values
func All() []Op {
	return []Op{
		EnterAlternateScreen{},
		ExitAlternateScreen{},
		ShowCursor{},
		HideCursor{},
		SetCursorPosition{},
		Clear{},
		ResetAttributes{},
		Underline{},
		Bold{},
		Blink{},
		Reverse{},
		SetForegroundColor{},
		SetBackgroundColor{},
	}
}
