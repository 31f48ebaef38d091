// Package driver turns terminal operations into the byte sequences the current
// terminal understands.
//
// Operations form a closed set of struct types implementing Op. Each carries
// exactly the parameters its capability template consumes, so call sites never
// name capabilities as strings.
//
// All failure happens in New: a Driver exists only for a database holding every
// required capability, and Get on such a Driver cannot fail.
//
//	drv, err := driver.New()
//	if err != nil {
//	    log.Fatal(err) // terminal missing capability: 'cup'
//	}
//	os.Stdout.Write(drv.Get(driver.EnterAlternateScreen{}))
//	os.Stdout.Write(drv.Get(driver.SetCursorPosition{Column: 10, Row: 2}))
package driver
