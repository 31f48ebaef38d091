package terminal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termdrv/capability"
	"github.com/lixenwraith/termdrv/driver"
)

// Short readable sequences so assertions can compare whole outputs
func testDatabase() *capability.Database {
	db := capability.Empty()
	db.Names = []string{"test"}
	db.Strings = map[string][]byte{
		capability.EnterCA:    []byte("<smcup>"),
		capability.ExitCA:     []byte("<rmcup>"),
		capability.ShowCursor: []byte("<cnorm>"),
		capability.HideCursor: []byte("<civis>"),
		capability.SetCursor:  []byte("<cup %p1%d,%p2%d>"),
		capability.Clear:      []byte("<clear>"),
		capability.AttrOff:    []byte("<sgr0>"),
		capability.Underline:  []byte("<smul>"),
		capability.Bold:       []byte("<bold>"),
		capability.Blink:      []byte("<blink>"),
		capability.Reverse:    []byte("<rev>"),
		capability.SetFg:      []byte("<fg %p1%d>"),
		capability.SetBg:      []byte("<bg %p1%d>"),
	}
	return db
}

func testDriver(t *testing.T) *driver.Driver {
	t.Helper()
	drv, err := driver.NewWithDatabase(testDatabase())
	require.NoError(t, err)
	return drv
}

// newTestTerminal returns an initialized terminal with its init output discarded
func newTestTerminal(t *testing.T, w, h int) (*Terminal, *VirtualBackend) {
	t.Helper()
	vb := NewVirtualBackend(w, h)
	term := New(testDriver(t), vb)
	require.NoError(t, term.Init())
	vb.Reset()
	return term, vb
}
