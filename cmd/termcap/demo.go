package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termdrv/capability"
	"github.com/lixenwraith/termdrv/service"
	"github.com/lixenwraith/termdrv/terminal"
)

func newDemoCmd(opts *options) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw a short full-screen demo using only capability sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caps := capability.NewServiceWithDatabase(opts.database())
			term := terminal.NewService(caps, terminal.NewBackend())
			return runDemo(caps, term, duration)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 3*time.Second, "how long to keep the demo on screen")
	return cmd
}

// runDemo validates before the first byte is written: a missing capability
// fails InitAll and the screen is never touched
func runDemo(caps *capability.Service, term *terminal.TerminalService, duration time.Duration) error {
	hub := service.NewHub()
	if err := hub.Register(caps); err != nil {
		return err
	}
	if err := hub.Register(term); err != nil {
		return err
	}

	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	defer func() {
		if r := recover(); r != nil {
			handleCrash(r, term.Terminal())
		}
	}()

	t := term.Terminal()
	drawDemo(t)
	if err := t.Flush(); err != nil {
		return err
	}

	time.Sleep(duration)
	return nil
}

// drawDemo paints a palette strip and one line per attribute
func drawDemo(t *terminal.Terminal) {
	w, h := t.Size()
	title := fmt.Sprintf("termcap demo: %s, %dx%d", t.Driver().Database().Primary(), w, h)

	t.MoveCursor(2, 1)
	t.SetStyle(terminal.Style{Fg: terminal.ColorDefault, Bg: terminal.ColorDefault, Attrs: terminal.AttrBold})
	t.Print(title)

	colors := min(t.Driver().Database().Colors(), 16)
	for i := 0; i < colors; i++ {
		t.MoveCursor(2+i*3, 3)
		t.SetStyle(terminal.Style{Fg: terminal.PaletteColor(0), Bg: terminal.PaletteColor(uint8(i))})
		t.Print(fmt.Sprintf("%2d ", i))
	}

	samples := []struct {
		label string
		attrs terminal.Attr
	}{
		{"bold", terminal.AttrBold},
		{"underline", terminal.AttrUnderline},
		{"blink", terminal.AttrBlink},
		{"reverse", terminal.AttrReverse},
		{"bold underline reverse", terminal.AttrBold | terminal.AttrUnderline | terminal.AttrReverse},
	}
	for i, s := range samples {
		t.MoveCursor(2, 5+i)
		t.SetStyle(terminal.Style{Fg: terminal.RGBColor(terminal.RGB{R: 120, G: 200, B: 255}), Bg: terminal.ColorDefault, Attrs: s.attrs})
		t.Print(s.label)
	}

	t.SetStyle(terminal.StyleDefault)
}
