package terminal

import (
	"bytes"
	"sync"
)

// VirtualBackend is an in-memory Backend that records output.
// Safe for concurrent use.
type VirtualBackend struct {
	mu        sync.Mutex
	width     int
	height    int
	out       bytes.Buffer
	raw       bool
	initErr   error
	initCount int
	finiCount int
}

// NewVirtualBackend creates a virtual backend with the given dimensions
func NewVirtualBackend(width, height int) *VirtualBackend {
	return &VirtualBackend{width: width, height: height}
}

// FailInit makes the next Init calls return err; nil clears it
func (v *VirtualBackend) FailInit(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.initErr = err
}

func (v *VirtualBackend) Init() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.initErr != nil {
		return v.initErr
	}
	v.raw = true
	v.initCount++
	return nil
}

func (v *VirtualBackend) Fini() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.raw = false
	v.finiCount++
}

func (v *VirtualBackend) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

func (v *VirtualBackend) Write(p []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.out.Write(p)
	return nil
}

// Resize changes the reported dimensions
func (v *VirtualBackend) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width, v.height = width, height
}

// Output returns a copy of everything written so far
func (v *VirtualBackend) Output() []byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	return bytes.Clone(v.out.Bytes())
}

// Reset discards recorded output
func (v *VirtualBackend) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.out.Reset()
}

// IsRaw reports whether the backend is between Init and Fini
func (v *VirtualBackend) IsRaw() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.raw
}

// InitCount returns how many times Init succeeded
func (v *VirtualBackend) InitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.initCount
}

// FiniCount returns how many times Fini ran
func (v *VirtualBackend) FiniCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.finiCount
}
