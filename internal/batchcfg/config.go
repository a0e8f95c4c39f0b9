// Package batchcfg loads the svdgen.yaml batch config that lets one
// invocation of cmd/svdgen emit several SVD inputs without a CLI flag
// per device.
package batchcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Device is a single SVD input/output pair in a batch run.
type Device struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Config is the top-level shape of an svdgen.yaml batch file.
type Config struct {
	Devices []Device `yaml:"devices"`
}

// Load reads and validates a batch config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batchcfg: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("batchcfg: parse %s: %w", path, err)
	}

	if len(cfg.Devices) == 0 {
		return nil, fmt.Errorf("batchcfg: %s declares no devices", path)
	}
	for i, dev := range cfg.Devices {
		if dev.Input == "" {
			return nil, fmt.Errorf("batchcfg: %s: device %d: missing input", path, i)
		}
		if dev.Output == "" {
			return nil, fmt.Errorf("batchcfg: %s: device %d: missing output", path, i)
		}
	}

	return &cfg, nil
}
