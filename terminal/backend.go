package terminal

// Backend abstracts the platform side of a terminal: raw mode, size, output.
// Unix terminals use NewBackend; tests use VirtualBackend.
type Backend interface {
	// Init enters raw mode
	Init() error

	// Fini restores the mode saved by Init
	Fini()

	// Size returns the current dimensions in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error
}

// backendWriter adapts Backend to io.Writer for bufio
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
