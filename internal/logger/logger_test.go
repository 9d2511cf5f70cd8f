package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	err := Initialize("debug")
	require.NoError(t, err)
	assert.NotNil(t, Log)

	err = Initialize("info")
	require.NoError(t, err)
	assert.NotNil(t, Log)
}

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize("not-a-level")
	assert.Error(t, err)
}
