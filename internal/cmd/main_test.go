package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain_Commands(t *testing.T) {
	assert.Equal(t, 0, Main([]string{"archivx", "id", "-n", "2"}))
	assert.Equal(t, 0, Main([]string{"archivx", "shape", "سلام"}))
	assert.Equal(t, 0, Main([]string{"archivx", "-version"}))
	assert.Equal(t, 1, Main([]string{"archivx", "code"}))
}

func TestMain_RegistersAllCommands(t *testing.T) {
	Main([]string{"archivx", "-version"})

	for _, name := range []string{"id", "code", "shape", "register", "receipt", "report", "lookup"} {
		factory, ok := Commands[name]
		if assert.True(t, ok, name) {
			c, err := factory()
			assert.NoError(t, err)
			assert.NotEmpty(t, c.Synopsis())
			assert.NotEmpty(t, c.Help())
		}
	}
}
