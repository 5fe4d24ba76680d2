package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_BeforeInit(t *testing.T) {
	global = nil
	log := Get()
	require.NotNil(t, log)
	// no-op logger; writing must not panic
	log.Info("ignored")
}

func TestInit(t *testing.T) {
	require.NoError(t, Init("development"))
	assert.NotNil(t, global)
	assert.Same(t, global, Get())

	require.NoError(t, Init("production"))
	Get().Info("structured entry")
	Sync()
}
