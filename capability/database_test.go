package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	db := Empty()

	assert.Empty(t, db.Names)
	assert.NotNil(t, db.Bools)
	assert.NotNil(t, db.Numbers)
	assert.NotNil(t, db.Strings)
	assert.Equal(t, "", db.Primary())
	assert.Equal(t, 0, db.Colors())
	assert.False(t, db.Has(EnterCA))
}

func TestDatabase_Accessors(t *testing.T) {
	db := fullDatabase()
	db.Bools["am"] = true

	assert.Equal(t, "xterm-256color", db.Primary())
	assert.Equal(t, 256, db.Colors())
	assert.True(t, db.Flag("am"))
	assert.False(t, db.Flag("bce"))

	n, ok := db.Number("colors")
	assert.True(t, ok)
	assert.Equal(t, 256, n)

	_, ok = db.Number("lines")
	assert.False(t, ok)

	tpl, ok := db.Template(Bold)
	assert.True(t, ok)
	assert.Equal(t, []byte("\x1b[1m"), tpl)

	_, ok = db.Template("sitm")
	assert.False(t, ok)
}

func TestDatabase_CloneIsIndependent(t *testing.T) {
	db := fullDatabase()
	c := db.clone()

	c.Strings[Bold][0] = 'X'
	delete(c.Strings, Clear)
	c.Names[0] = "other"
	c.Numbers["colors"] = 8

	assert.Equal(t, []byte("\x1b[1m"), db.Strings[Bold])
	assert.True(t, db.Has(Clear))
	assert.Equal(t, "xterm-256color", db.Primary())
	assert.Equal(t, 256, db.Colors())
}
