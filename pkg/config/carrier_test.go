package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulateUnsetConfigVars(t *testing.T) {
	var c CarrierConfig
	c.PopulateUnsetConfigVars()
	assert.Equal(t, DefaultSentinel, c.Sentinel)

	c = CarrierConfig{Sentinel: '$'}
	c.PopulateUnsetConfigVars()
	assert.Equal(t, byte('$'), c.Sentinel)
}

func TestValidate(t *testing.T) {
	require.NoError(t, CarrierConfig{Sentinel: DefaultSentinel}.Validate())
	require.NoError(t, CarrierConfig{Sentinel: 0x7f}.Validate())

	err := CarrierConfig{Sentinel: 0x80}.Validate()
	assert.ErrorIs(t, err, ErrNonASCIISentinel)
}
