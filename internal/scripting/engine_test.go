package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/driftvale/server/internal/sched"
)

func writeScripts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	sysDir := filepath.Join(dir, "systems")
	require.NoError(t, os.MkdirAll(sysDir, 0o755))
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(sysDir, name), []byte(body), 0o644))
	}
	return dir
}

func TestEngine_DeclaredSystems(t *testing.T) {
	dir := writeScripts(t, map[string]string{
		"10_regen.lua":   `register_system{ id = "regen", cadence = "per_action" }`,
		"20_weather.lua": `register_system{ id = "weather", cadence = "hourly" }`,
		"30_economy.lua": `register_system{ id = "economy", cadence = "daily" }`,
	})

	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	got := e.DeclaredSystems()
	require.Len(t, got, 3)
	// Lexical file order fixes registration order.
	assert.Equal(t, sched.Descriptor{ID: "regen", Cadence: sched.CadencePerAction}, got[0])
	assert.Equal(t, sched.Descriptor{ID: "weather", Cadence: sched.CadenceHourly}, got[1])
	assert.Equal(t, sched.Descriptor{ID: "economy", Cadence: sched.CadenceDaily}, got[2])
}

func TestEngine_MultipleDeclarationsPerScript(t *testing.T) {
	dir := writeScripts(t, map[string]string{
		"world.lua": `
register_system{ id = "tides", cadence = "hourly" }
register_system{ id = "seasons", cadence = "daily" }
`,
	})

	e, err := NewEngine(dir, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	assert.Len(t, e.DeclaredSystems(), 2)
}

func TestEngine_RejectsUnknownCadence(t *testing.T) {
	dir := writeScripts(t, map[string]string{
		"bad.lua": `register_system{ id = "weather", cadence = "weekly" }`,
	})

	_, err := NewEngine(dir, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather")
}

func TestEngine_RejectsMissingID(t *testing.T) {
	dir := writeScripts(t, map[string]string{
		"bad.lua": `register_system{ cadence = "daily" }`,
	})

	_, err := NewEngine(dir, zap.NewNop())
	assert.Error(t, err)
}

func TestEngine_MissingScriptsDirIsEmpty(t *testing.T) {
	e, err := NewEngine(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	assert.Empty(t, e.DeclaredSystems())
}
