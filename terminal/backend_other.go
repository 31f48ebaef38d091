//go:build !unix

package terminal

import "errors"

type unsupportedBackend struct{}

// NewBackend returns a backend whose Init always fails on this platform
func NewBackend() Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Init() error {
	return errors.New("terminal: platform not supported")
}

func (unsupportedBackend) Fini() {}

func (unsupportedBackend) Size() (int, int) { return 80, 24 }

func (unsupportedBackend) Write(p []byte) error {
	return errors.New("terminal: platform not supported")
}
