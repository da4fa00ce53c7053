package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/driftvale/server/internal/sched"
)

// SystemTable holds system descriptors loaded from the YAML manifest,
// in file order.
type SystemTable struct {
	systems []sched.Descriptor
}

// All returns the descriptors in manifest order.
func (t *SystemTable) All() []sched.Descriptor {
	return t.systems
}

// Count returns total loaded system entries.
func (t *SystemTable) Count() int {
	return len(t.systems)
}

// --- YAML loading ---

type systemEntry struct {
	ID      string `yaml:"id"`
	Cadence string `yaml:"cadence"`
}

type systemListFile struct {
	Systems []systemEntry `yaml:"systems"`
}

// LoadSystemTable loads the system manifest from YAML. Entries without an
// id or with a cadence outside {per_action, hourly, daily} are load errors.
func LoadSystemTable(path string) (*SystemTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read systems: %w", err)
	}
	var f systemListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse systems: %w", err)
	}
	t := &SystemTable{systems: make([]sched.Descriptor, 0, len(f.Systems))}
	for i, e := range f.Systems {
		if e.ID == "" {
			return nil, fmt.Errorf("systems entry %d: missing id", i)
		}
		cadence, err := sched.ParseCadence(e.Cadence)
		if err != nil {
			return nil, fmt.Errorf("system %q: %w", e.ID, err)
		}
		t.systems = append(t.systems, sched.Descriptor{ID: e.ID, Cadence: cadence})
	}
	return t, nil
}
