package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.config"))
	require.NoError(t, err)

	assert.Equal(t, "m433ia", c.Model)
	assert.Equal(t, time.Second/10, c.PollInterval)
	assert.Equal(t, "KEY_5", c.PercentageKey)
	assert.Equal(t, -1, c.I2CBus)
	assert.Equal(t, uint8(0x15), c.I2CAddress)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numpadd.config")
	require.NoError(t, os.WriteFile(path, []byte(`[numpadd]
model = ux581l
poll_rate = 20
percentage_key = KEY_MINUS
layout_dir = /etc/numpadd/layouts

[i2c]
bus = 4
address = 0x15
`), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ux581l", c.Model)
	assert.Equal(t, time.Second/20, c.PollInterval)
	assert.Equal(t, "KEY_MINUS", c.PercentageKey)
	assert.Equal(t, "/etc/numpadd/layouts", c.LayoutDir)
	assert.Equal(t, 4, c.I2CBus)
	assert.Equal(t, uint8(0x15), c.I2CAddress)
}

func TestLoadConfigInvalidPollRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numpadd.config")
	require.NoError(t, os.WriteFile(path, []byte("[numpadd]\npoll_rate = 0\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigInvalidAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numpadd.config")
	require.NoError(t, os.WriteFile(path, []byte("[i2c]\naddress = 0x300\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
