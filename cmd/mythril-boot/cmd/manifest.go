package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes the boot artifacts the load command pulls through
// the platform services facade.
type Manifest struct {
	Version int      `yaml:"version"`
	Volumes []string `yaml:"volumes"`

	Kernel string   `yaml:"kernel"`
	Initrd string   `yaml:"initrd,omitempty"`
	Extra  []string `yaml:"extra,omitempty"`
}

func (m *Manifest) normalize() {
	if m.Version == 0 {
		m.Version = 1
	}
}

// Artifacts returns the firmware paths to load, in boot order.
func (m *Manifest) Artifacts() []string {
	paths := []string{m.Kernel}
	if m.Initrd != "" {
		paths = append(paths, m.Initrd)
	}
	return append(paths, m.Extra...)
}

// LoadManifest reads and validates a yaml boot manifest.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	m.normalize()

	if len(m.Volumes) == 0 {
		return Manifest{}, fmt.Errorf("manifest names no volumes")
	}
	if m.Kernel == "" {
		return Manifest{}, fmt.Errorf("manifest names no kernel")
	}
	return m, nil
}
