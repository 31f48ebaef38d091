package capability

// Database is a parsed terminal description keyed by capability short name.
// Values handed out by Acquire are shared; treat every field as read-only.
type Database struct {
	Names   []string
	Bools   map[string]bool
	Numbers map[string]int
	Strings map[string][]byte
}

// Empty returns a database with no names and no capabilities
func Empty() *Database {
	return &Database{
		Names:   []string{},
		Bools:   map[string]bool{},
		Numbers: map[string]int{},
		Strings: map[string][]byte{},
	}
}

// Primary returns the terminal's canonical name, or "" for an empty database
func (db *Database) Primary() string {
	if len(db.Names) == 0 {
		return ""
	}
	return db.Names[0]
}

// Has reports whether a string capability is present
func (db *Database) Has(name string) bool {
	_, ok := db.Strings[name]
	return ok
}

// Template returns the raw template for a string capability.
// The slice is shared with the database and must not be modified.
func (db *Database) Template(name string) ([]byte, bool) {
	v, ok := db.Strings[name]
	return v, ok
}

// Number returns a numeric capability such as "colors"
func (db *Database) Number(name string) (int, bool) {
	v, ok := db.Numbers[name]
	return v, ok
}

// Flag returns a boolean capability, false when absent
func (db *Database) Flag(name string) bool {
	return db.Bools[name]
}

// Colors returns the palette size, 0 when the terminal does not declare one
func (db *Database) Colors() int {
	return db.Numbers["colors"]
}

// clone copies maps so overrides never touch a source library's tables
func (db *Database) clone() *Database {
	c := &Database{
		Names:   append([]string{}, db.Names...),
		Bools:   make(map[string]bool, len(db.Bools)),
		Numbers: make(map[string]int, len(db.Numbers)),
		Strings: make(map[string][]byte, len(db.Strings)),
	}
	for k, v := range db.Bools {
		c.Bools[k] = v
	}
	for k, v := range db.Numbers {
		c.Numbers[k] = v
	}
	for k, v := range db.Strings {
		c.Strings[k] = append([]byte(nil), v...)
	}
	return c
}
