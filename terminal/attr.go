package terminal

import "github.com/lixenwraith/termdrv/driver"

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrUnderline Attr = 1 << 1
	AttrBlink     Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// Style is the full rendition applied to subsequent text
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// StyleDefault uses terminal colors and no attributes
var StyleDefault = Style{Fg: ColorDefault, Bg: ColorDefault}

// ops expands a style into driver operations. Attribute capabilities only
// switch modes on, so every style starts from a reset.
func (s Style) ops() []driver.Op {
	ops := make([]driver.Op, 0, 7)
	ops = append(ops, driver.ResetAttributes{})

	if s.Attrs&AttrBold != 0 {
		ops = append(ops, driver.Bold{})
	}
	if s.Attrs&AttrUnderline != 0 {
		ops = append(ops, driver.Underline{})
	}
	if s.Attrs&AttrBlink != 0 {
		ops = append(ops, driver.Blink{})
	}
	if s.Attrs&AttrReverse != 0 {
		ops = append(ops, driver.Reverse{})
	}

	if !s.Fg.IsDefault() {
		ops = append(ops, driver.SetForegroundColor{Code: uint8(s.Fg)})
	}
	if !s.Bg.IsDefault() {
		ops = append(ops, driver.SetBackgroundColor{Code: uint8(s.Bg)})
	}
	return ops
}
