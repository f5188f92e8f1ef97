//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("ValidConfig", func(t *testing.T) {
		configContent := `logging:
  level: info
  format: simple

metrics:
  listen: 127.0.0.1:9101

devices:
  br-lan.10:
    type: 8021q
    ifname: eth0
    vid: 10
    ingress_qos_mapping:
      - "1:2"
  wan.100:
    type: 8021ad
    ifname: eth1
    vid: 100
    mtu: 9000
`
		configFile := writeConfig(t, tempDir, "valid.yml", configContent)

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, "simple", config.Logging.Format)
		assert.Equal(t, "127.0.0.1:9101", config.Metrics.Listen)
		assert.Len(t, config.Devices, 2)

		decls, err := config.DeviceDecls()
		require.NoError(t, err)

		lan, exists := decls["br-lan.10"]
		require.True(t, exists)
		assert.Equal(t, "8021q", lan.Type)
		assert.Contains(t, string(lan.Raw), "vid: 10")

		wan, exists := decls["wan.100"]
		require.True(t, exists)
		assert.Equal(t, "8021ad", wan.Type)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "does-not-exist.yml"))
		assert.Error(t, err)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		configFile := writeConfig(t, tempDir, "invalid.yml", "devices: [unclosed")
		_, err := Load(configFile)
		assert.Error(t, err)
	})
}

func TestDeviceDeclsDeterministic(t *testing.T) {
	tempDir := t.TempDir()
	configContent := `devices:
  br-lan.10:
    type: 8021q
    ifname: eth0
    vid: 10
`
	configFile := writeConfig(t, tempDir, "config.yml", configContent)

	first, err := Load(configFile)
	require.NoError(t, err)
	second, err := Load(configFile)
	require.NoError(t, err)

	firstDecls, err := first.DeviceDecls()
	require.NoError(t, err)
	secondDecls, err := second.DeviceDecls()
	require.NoError(t, err)

	// Identical files must produce byte-identical raw blobs so a
	// reload with unchanged configuration classifies as applied.
	assert.Equal(t, firstDecls["br-lan.10"].Raw, secondDecls["br-lan.10"].Raw)
}

func TestValidate(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("Valid", func(t *testing.T) {
		configFile := writeConfig(t, tempDir, "ok.yml", "devices:\n  v10:\n    type: 8021q\n    ifname: eth0\n")
		config, err := Load(configFile)
		require.NoError(t, err)
		assert.NoError(t, config.Validate())
	})

	t.Run("NoDevices", func(t *testing.T) {
		configFile := writeConfig(t, tempDir, "empty.yml", "logging:\n  level: info\n")
		config, err := Load(configFile)
		require.NoError(t, err)
		assert.ErrorContains(t, config.Validate(), "no devices")
	})

	t.Run("MissingType", func(t *testing.T) {
		configFile := writeConfig(t, tempDir, "missing.yml", "devices:\n  v10:\n    ifname: eth0\n")
		config, err := Load(configFile)
		require.NoError(t, err)
		assert.ErrorContains(t, config.Validate(), "type is required")
	})

	t.Run("UnknownType", func(t *testing.T) {
		configFile := writeConfig(t, tempDir, "unknown.yml", "devices:\n  v10:\n    type: macvlan\n")
		config, err := Load(configFile)
		require.NoError(t, err)
		assert.ErrorContains(t, config.Validate(), "unknown type")
	})
}
