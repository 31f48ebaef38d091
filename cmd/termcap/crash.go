package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termdrv/terminal"
)

// handleCrash restores the terminal and prints the stack trace, then exits
func handleCrash(r any, t *terminal.Terminal) {
	if r == nil {
		return
	}

	if t != nil {
		t.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout, nil)
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\ntermcap crashed: %v\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}
