package capability

import (
	"errors"
	"fmt"
	"log/slog"

	tcellinfo "github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/extended"
	xoinfo "github.com/xo/terminfo"
)

// ErrNoTerm is returned by Load when no terminal name is configured
var ErrNoTerm = errors.New("terminal name not set")

// Options selects a terminal description and adjusts it after loading
type Options struct {
	// Term is the terminfo name, normally $TERM
	Term string

	// Overrides replaces or adds string capabilities, keyed by short name
	Overrides map[string]string

	// Disable removes string capabilities after overrides are applied
	Disable []string
}

type source struct {
	name string
	load func(term string) (*Database, error)
}

// sources are tried in order; the first hit wins
var sources = []source{
	{name: "terminfo", load: loadCompiled},
	{name: "builtin", load: loadBuiltin},
}

// Load builds a database for opts.Term from the first source that knows it.
// The returned database is private to the caller.
func Load(opts Options) (*Database, error) {
	if opts.Term == "" {
		return nil, ErrNoTerm
	}

	var errs []error
	for _, src := range sources {
		db, err := src.load(opts.Term)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.name, err))
			continue
		}
		slog.Debug("capability database loaded",
			"term", opts.Term, "source", src.name, "strings", len(db.Strings))
		return opts.apply(db), nil
	}
	return nil, fmt.Errorf("no description for terminal %q: %w", opts.Term, errors.Join(errs...))
}

// apply copies db and layers overrides, then removals
func (o Options) apply(db *Database) *Database {
	out := db.clone()
	for name, tpl := range o.Overrides {
		out.Strings[name] = []byte(tpl)
	}
	for _, name := range o.Disable {
		delete(out.Strings, name)
	}
	return out
}

// loadCompiled reads the compiled terminfo entry from the system database
func loadCompiled(term string) (*Database, error) {
	ti, err := xoinfo.Load(term)
	if err != nil {
		return nil, err
	}
	return &Database{
		Names:   append([]string{}, ti.Names...),
		Bools:   ti.BoolCapsShort(),
		Numbers: ti.NumCapsShort(),
		Strings: ti.StringCapsShort(),
	}, nil
}

// loadBuiltin falls back to the table compiled into tcell. The table has no
// bel, cub1 or cuu1 entries.
func loadBuiltin(term string) (*Database, error) {
	ti, err := tcellinfo.LookupTerminfo(term)
	if err != nil {
		return nil, err
	}

	db := Empty()
	db.Names = append(db.Names, ti.Name)
	db.Names = append(db.Names, ti.Aliases...)

	if ti.AutoMargin {
		db.Bools["am"] = true
	}
	for name, n := range map[string]int{
		"colors": ti.Colors,
		"cols":   ti.Columns,
		"lines":  ti.Lines,
	} {
		if n > 0 {
			db.Numbers[name] = n
		}
	}

	for name, tpl := range map[string]string{
		EnterCA:    ti.EnterCA,
		ExitCA:     ti.ExitCA,
		ShowCursor: ti.ShowCursor,
		HideCursor: ti.HideCursor,
		SetCursor:  ti.SetCursor,
		Clear:      ti.Clear,
		AttrOff:    ti.AttrOff,
		Underline:  ti.Underline,
		Bold:       ti.Bold,
		Blink:      ti.Blink,
		Reverse:    ti.Reverse,
		SetFg:      ti.SetFg,
		SetBg:      ti.SetBg,
		Dim:        ti.Dim,
		ResetFgBg:  ti.ResetFgBg,
		"smkx":     ti.EnterKeypad,
		"rmkx":     ti.ExitKeypad,
		"pad":      ti.PadChar,
	} {
		// Empty fields mean the entry does not define the capability
		if tpl != "" {
			db.Strings[name] = []byte(tpl)
		}
	}
	return db, nil
}
