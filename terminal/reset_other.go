//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls differ; Fini restores
// the saved state on the normal path
func resetTerminalMode() {}
