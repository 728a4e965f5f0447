package sentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDisabledWithoutToken(t *testing.T) {
	require.NoError(t, Initialize(Config{}))
}

func TestInitializeRequiresHost(t *testing.T) {
	err := Initialize(Config{Token: "token-without-host"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host is required")
}
