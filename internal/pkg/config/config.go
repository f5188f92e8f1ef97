package config

import (
	"fmt"
	"os"

	"golang-vlandevd/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// DeviceDecl is one declared VLAN device: its type variant plus the raw
// attribute blob handed to the device's reload logic. The blob is the
// canonical re-marshaling of the device's YAML section, so byte-identical
// declarations produce byte-identical blobs.
type DeviceDecl struct {
	Type string
	Raw  []byte
}

// MetricsConfig configures the optional metrics endpoint.
type MetricsConfig struct {
	Listen string `yaml:"listen,omitempty"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig    `yaml:"logging"`
	Metrics MetricsConfig        `yaml:"metrics"`
	Devices map[string]yaml.Node `yaml:"devices"`
}

// Load loads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &config, nil
}

// DeviceDecls extracts the per-device declarations from the raw device
// sections. Only the "type" field is interpreted here; everything else is
// preserved as the device's raw attribute blob.
func (c *Config) DeviceDecls() (map[string]DeviceDecl, error) {
	decls := make(map[string]DeviceDecl, len(c.Devices))

	for name, node := range c.Devices {
		var header struct {
			Type string `yaml:"type"`
		}
		if err := node.Decode(&header); err != nil {
			return nil, fmt.Errorf("device %s: %w", name, err)
		}

		raw, err := yaml.Marshal(&node)
		if err != nil {
			return nil, fmt.Errorf("device %s: %w", name, err)
		}

		decls[name] = DeviceDecl{Type: header.Type, Raw: raw}
	}

	return decls, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Devices) == 0 {
		return fmt.Errorf("no devices configured")
	}

	decls, err := c.DeviceDecls()
	if err != nil {
		return err
	}

	for name, decl := range decls {
		if name == "" {
			return fmt.Errorf("device with empty name")
		}
		switch decl.Type {
		case "8021q", "8021ad":
		case "":
			return fmt.Errorf("device %s: type is required", name)
		default:
			return fmt.Errorf("device %s: unknown type %q", name, decl.Type)
		}
	}

	return nil
}
