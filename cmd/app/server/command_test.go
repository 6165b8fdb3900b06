package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	cmd := Command()
	assert.Equal(t, "start", cmd.Name)
	assert.Contains(t, cmd.Usage, "reports")
	assert.NotNil(t, cmd.Action)
}
