// @lixen: #focus{sys[term,caps,init]}
package capability

import (
	"log/slog"
	"sync"

	"github.com/lixenwraith/termdrv/config"
)

// shared is built on first Acquire and read-only afterwards
var shared = sync.OnceValue(func() *Database {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Warn("capability config ignored", "error", err)
	}

	db, err := Load(FromConfig(cfg))
	if err != nil {
		slog.Warn("capability database unavailable, using empty description", "error", err)
		return Empty()
	}
	return db
})

// Acquire returns the process-wide database, loading it on first use.
// Never nil; a terminal that cannot be described yields an empty database.
func Acquire() *Database {
	return shared()
}

// FromConfig converts loaded configuration into load options
func FromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		Term:      cfg.Term,
		Overrides: cfg.Overrides,
		Disable:   cfg.Disable,
	}
}

// Validate checks names against db's string capabilities in order and
// returns db when all are present. A nil db is validated as Empty.
func Validate(db *Database, names []string) (*Database, error) {
	if db == nil {
		db = Empty()
	}
	for _, name := range names {
		if !db.Has(name) {
			return nil, &MissingCapabilityError{Name: name}
		}
	}
	return db, nil
}

// ValidateRequired validates the process-wide database against Required
func ValidateRequired() (*Database, error) {
	return Validate(Acquire(), Required())
}

// Missing lists every absent name, in order, for diagnostics
func Missing(db *Database, names []string) []string {
	if db == nil {
		db = Empty()
	}
	var out []string
	for _, name := range names {
		if !db.Has(name) {
			out = append(out, name)
		}
	}
	return out
}
