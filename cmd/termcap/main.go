// termcap validates the current terminal against the driver's required
// capabilities, dumps the bytes each operation produces, and runs a short
// full-screen demo.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "termcap: %v\n", err)
		os.Exit(1)
	}
}
