package driver

import (
	"sync"

	"github.com/gdamore/tcell/v2/terminfo"
)

// interp evaluates %-parameter templates; TParm reads no fields of its receiver
var interp = &terminfo.Terminfo{}

// staticMu guards TParm's package-level static variables (%P[A-Z], %g[A-Z])
var staticMu sync.Mutex

// expand1 substitutes a single numeric parameter
func expand1(tpl []byte, p1 int) []byte {
	if usesStatic(tpl) {
		staticMu.Lock()
		defer staticMu.Unlock()
	}
	return []byte(interp.TParm(string(tpl), p1))
}

// expand2 substitutes two numeric parameters in the given order
func expand2(tpl []byte, p1, p2 int) []byte {
	if usesStatic(tpl) {
		staticMu.Lock()
		defer staticMu.Unlock()
	}
	return []byte(interp.TParm(string(tpl), p1, p2))
}

// usesStatic reports whether tpl stores or reads a static variable
func usesStatic(tpl []byte) bool {
	for i := 0; i+2 < len(tpl); i++ {
		if tpl[i] != '%' {
			continue
		}
		if tpl[i+1] == '%' {
			i++
			continue
		}
		if (tpl[i+1] == 'P' || tpl[i+1] == 'g') && tpl[i+2] >= 'A' && tpl[i+2] <= 'Z' {
			return true
		}
	}
	return false
}
