// @lixen: #focus{sys[term,caps]}
// Package capability holds the terminal capability database the driver reads from.
//
// The database is loaded once per process from the environment and never
// mutated afterwards. Sources, in order:
//   - the compiled terminfo entry for $TERM (github.com/xo/terminfo)
//   - tcell's built-in terminal table (github.com/gdamore/tcell/v2/terminfo)
//   - an empty database
//
// Load failures are not reported here. An empty or partial database surfaces
// later, through Validate, as a MissingCapabilityError naming the first absent
// capability.
package capability
