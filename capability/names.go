package capability

// Capability names, terminfo short form
const (
	EnterCA    = "smcup"
	ExitCA     = "rmcup"
	ShowCursor = "cnorm"
	HideCursor = "civis"
	SetCursor  = "cup"
	Clear      = "clear"
	AttrOff    = "sgr0"
	Underline  = "smul"
	Bold       = "bold"
	Blink      = "blink"
	Reverse    = "rev"
	SetFg      = "setaf"
	SetBg      = "setab"

	Dim       = "dim"
	Bell      = "bel"
	ResetFgBg = "op"
)

// required is ordered; validation reports the first gap in this order
var required = [...]string{
	EnterCA,
	ExitCA,
	ShowCursor,
	HideCursor,
	SetCursor,
	Clear,
	AttrOff,
	Underline,
	Bold,
	Reverse,
	SetFg,
	SetBg,
}

// optional capabilities are used when present and never block construction
var optional = [...]string{
	Blink,
	Dim,
	Bell,
	ResetFgBg,
}

// Required returns the capabilities a driver cannot run without, in validation order
func Required() []string {
	return append([]string(nil), required[:]...)
}

// Optional returns capabilities the driver uses only when the terminal has them
func Optional() []string {
	return append([]string(nil), optional[:]...)
}

// IsRequired reports whether name is in the required set
func IsRequired(name string) bool {
	for _, r := range required {
		if r == name {
			return true
		}
	}
	return false
}
