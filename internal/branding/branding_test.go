package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "torlink", CLIName())
	assert.Equal(t, "TORLINK", EnvPrefix())
	assert.Equal(t, ".torlink", HomeDir())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "TORLINK_LOG_LEVEL", EnvVar("log_level"))
}
