package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termdrv/driver"
)

type dumpParams struct {
	column int
	row    int
	color  uint8
}

func newDumpCmd(opts *options) *cobra.Command {
	p := dumpParams{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the bytes every operation produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			drv, err := driver.NewWithDatabase(opts.database())
			if err != nil {
				return err
			}
			dump(cmd.OutOrStdout(), drv, p)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.column, "col", 10, "column for SetCursorPosition")
	cmd.Flags().IntVar(&p.row, "row", 2, "row for SetCursorPosition")
	cmd.Flags().Uint8Var(&p.color, "color", 5, "palette index for the color operations")
	return cmd
}

// withParams fills parameterized operations from p
func withParams(op driver.Op, p dumpParams) driver.Op {
	switch op.(type) {
	case driver.SetCursorPosition:
		return driver.SetCursorPosition{Column: p.column, Row: p.row}
	case driver.SetForegroundColor:
		return driver.SetForegroundColor{Code: p.color}
	case driver.SetBackgroundColor:
		return driver.SetBackgroundColor{Code: p.color}
	default:
		return op
	}
}

// opName strips the package qualifier from an operation's type
func opName(op driver.Op) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", op), "driver.")
}

func dump(w io.Writer, drv *driver.Driver, p dumpParams) {
	header := lipgloss.NewStyle().Bold(true)
	nameCol := lipgloss.NewStyle().Width(36)
	capCol := lipgloss.NewStyle().Width(8)
	absent := lipgloss.NewStyle().Faint(true)

	fmt.Fprintln(w, header.Render(nameCol.Render("operation")+capCol.Render("cap")+"bytes"))
	for _, op := range driver.All() {
		op = withParams(op, p)

		name := opName(op)
		switch o := op.(type) {
		case driver.SetCursorPosition:
			name = fmt.Sprintf("%s(col=%d, row=%d)", name, o.Column, o.Row)
		case driver.SetForegroundColor:
			name = fmt.Sprintf("%s(%d)", name, o.Code)
		case driver.SetBackgroundColor:
			name = fmt.Sprintf("%s(%d)", name, o.Code)
		}

		out := strconv.Quote(string(drv.Get(op)))
		if !drv.Supports(op) {
			out = absent.Render("(unsupported)")
		}
		fmt.Fprintln(w, nameCol.Render(name)+capCol.Render(driver.Capname(op))+out)
	}
}
