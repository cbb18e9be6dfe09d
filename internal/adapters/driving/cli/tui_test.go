package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_Short(t *testing.T) {
	assert.Equal(t, "Launch the interactive dashboard", tuiCmd.Short)
}

func TestTUICmd_LongDocumentsBindings(t *testing.T) {
	for _, key := range []string{"Ctrl+S", "Ctrl+G", "Ctrl+O", "Ctrl+R", "F2"} {
		assert.Contains(t, tuiCmd.Long, key)
	}
}
