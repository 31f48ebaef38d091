package capability

// xtermStrings is a trimmed xterm-256color description
func xtermStrings() map[string][]byte {
	return map[string][]byte{
		EnterCA:    []byte("\x1b[?1049h"),
		ExitCA:     []byte("\x1b[?1049l"),
		ShowCursor: []byte("\x1b[?12l\x1b[?25h"),
		HideCursor: []byte("\x1b[?25l"),
		SetCursor:  []byte("\x1b[%i%p1%d;%p2%dH"),
		Clear:      []byte("\x1b[H\x1b[2J"),
		AttrOff:    []byte("\x1b(B\x1b[m"),
		Underline:  []byte("\x1b[4m"),
		Bold:       []byte("\x1b[1m"),
		Blink:      []byte("\x1b[5m"),
		Reverse:    []byte("\x1b[7m"),
		SetFg:      []byte("\x1b[3%p1%dm"),
		SetBg:      []byte("\x1b[4%p1%dm"),
	}
}

func fullDatabase() *Database {
	db := Empty()
	db.Names = []string{"xterm-256color", "xterm with 256 colors"}
	db.Numbers["colors"] = 256
	db.Strings = xtermStrings()
	return db
}

// withoutCapability returns a full database minus one string capability
func withoutCapability(name string) *Database {
	db := fullDatabase()
	delete(db.Strings, name)
	return db
}
