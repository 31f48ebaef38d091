package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termdrv/capability"
	"github.com/lixenwraith/termdrv/driver"
)

var capDescriptions = map[string]string{
	capability.EnterCA:    "enter alternate screen",
	capability.ExitCA:     "exit alternate screen",
	capability.ShowCursor: "show cursor",
	capability.HideCursor: "hide cursor",
	capability.SetCursor:  "move cursor",
	capability.Clear:      "clear screen",
	capability.AttrOff:    "reset attributes",
	capability.Underline:  "underline",
	capability.Bold:       "bold",
	capability.Blink:      "blink",
	capability.Reverse:    "reverse video",
	capability.SetFg:      "set foreground color",
	capability.SetBg:      "set background color",
	capability.Dim:        "dim",
	capability.Bell:       "bell",
	capability.ResetFgBg:  "reset color pair",
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the terminal against the required capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db := opts.database()
			report(cmd.OutOrStdout(), db)

			if _, err := driver.NewWithDatabase(db); err != nil {
				return err
			}
			return nil
		},
	}
}

// report prints one line per required and optional capability
func report(w io.Writer, db *capability.Database) {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed, color.Bold).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	name := db.Primary()
	if name == "" {
		name = "(no description)"
	}
	fmt.Fprintf(w, "terminal: %s", name)
	if len(db.Names) > 1 {
		fmt.Fprintf(w, " %s", dim("("+strings.Join(db.Names[1:], ", ")+")"))
	}
	fmt.Fprintf(w, ", %d colors\n", db.Colors())

	fmt.Fprintln(w, "required:")
	for _, c := range capability.Required() {
		status := ok("ok")
		if !db.Has(c) {
			status = bad("missing")
		}
		fmt.Fprintf(w, "  %-8s %-22s %s\n", c, capDescriptions[c], status)
	}

	fmt.Fprintln(w, "optional:")
	for _, c := range capability.Optional() {
		status := ok("ok")
		if !db.Has(c) {
			status = warn("absent")
		}
		fmt.Fprintf(w, "  %-8s %-22s %s\n", c, capDescriptions[c], status)
	}

	if missing := capability.Missing(db, capability.Required()); len(missing) > 0 {
		fmt.Fprintf(w, "%s %s\n", bad("unsupported:"), strings.Join(missing, ", "))
	}
}
