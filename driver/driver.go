// @lixen: #focus{sys[term,output]}
package driver

import "github.com/lixenwraith/termdrv/capability"

// Driver maps operations to bytes for one validated capability database.
// It holds no mutable state and is safe for concurrent use; templates that
// use terminfo static variables are expanded one at a time.
type Driver struct {
	db *capability.Database
}

// New validates the process-wide database and returns a driver for it.
// The error is a *capability.MissingCapabilityError naming the first gap.
func New() (*Driver, error) {
	db, err := capability.ValidateRequired()
	if err != nil {
		return nil, err
	}
	return &Driver{db: db}, nil
}

// NewWithDatabase validates db and returns a driver for it; nil counts as empty
func NewWithDatabase(db *capability.Database) (*Driver, error) {
	if db == nil {
		db = capability.Empty()
	}
	valid, err := capability.Validate(db, capability.Required())
	if err != nil {
		return nil, err
	}
	return &Driver{db: valid}, nil
}

// Get returns the bytes that perform op on this terminal.
// The result is freshly allocated and owned by the caller.
func (d *Driver) Get(op Op) []byte {
	tpl, ok := d.db.Template(op.capname())
	if !ok {
		// Only optional capabilities get here; required ones were validated in New
		return []byte{}
	}

	switch o := op.(type) {
	case SetCursorPosition:
		return expand2(tpl, o.Row, o.Column)
	case SetForegroundColor:
		return expand1(tpl, int(o.Code))
	case SetBackgroundColor:
		return expand1(tpl, int(o.Code))
	default:
		return append([]byte(nil), tpl...)
	}
}

// AppendTo appends the bytes for each op to dst and returns the extended slice
func (d *Driver) AppendTo(dst []byte, ops ...Op) []byte {
	for _, op := range ops {
		dst = append(dst, d.Get(op)...)
	}
	return dst
}

// Supports reports whether the terminal defines op's capability.
// Always true for operations backed by a required capability.
func (d *Driver) Supports(op Op) bool {
	return d.db.Has(op.capname())
}

// Database returns the validated database backing this driver
func (d *Driver) Database() *capability.Database {
	return d.db
}
