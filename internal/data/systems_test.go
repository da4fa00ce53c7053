package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftvale/server/internal/sched"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "systems.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSystemTable(t *testing.T) {
	path := writeManifest(t, `
systems:
  - id: regen
    cadence: per_action
  - id: weather
    cadence: hourly
  - id: economy
    cadence: daily
`)
	table, err := LoadSystemTable(path)
	require.NoError(t, err)
	require.Equal(t, 3, table.Count())

	all := table.All()
	assert.Equal(t, sched.Descriptor{ID: "regen", Cadence: sched.CadencePerAction}, all[0])
	assert.Equal(t, sched.Descriptor{ID: "weather", Cadence: sched.CadenceHourly}, all[1])
	assert.Equal(t, sched.Descriptor{ID: "economy", Cadence: sched.CadenceDaily}, all[2])
}

func TestLoadSystemTable_UnknownCadence(t *testing.T) {
	path := writeManifest(t, `
systems:
  - id: weather
    cadence: weekly
`)
	_, err := LoadSystemTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather")
}

func TestLoadSystemTable_MissingID(t *testing.T) {
	path := writeManifest(t, `
systems:
  - cadence: daily
`)
	_, err := LoadSystemTable(path)
	assert.Error(t, err)
}

func TestLoadSystemTable_MissingFile(t *testing.T) {
	_, err := LoadSystemTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSystemTable_EmptyManifest(t *testing.T) {
	path := writeManifest(t, "systems: []\n")
	table, err := LoadSystemTable(path)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Count())
}
