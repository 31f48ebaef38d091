// @focus: #sys { term }
// Package terminal writes driver output to a real or virtual terminal.
//
// It is the caller side of package driver: it owns the output stream,
// buffers escape sequences and text, and restores the terminal on exit.
// Every escape sequence comes from the capability database through a
// driver.Driver; nothing here is hard-coded to one terminal type.
//
// Features:
//   - Raw mode via golang.org/x/term, size via TIOCGWINSZ
//   - Alternate screen entry/exit with cursor hide/show
//   - Style (palette colors, bold/underline/blink/reverse) as driver ops
//   - EmergencyReset for panic paths
package terminal
