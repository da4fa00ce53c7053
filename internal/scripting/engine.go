package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/driftvale/server/internal/sched"
)

// Engine wraps a single gopher-lua VM that loads world extension scripts.
// Scripts declare the systems they contribute by calling
//
//	register_system{ id = "weather", cadence = "hourly" }
//
// at load time. Only the declarations are harvested here; system bodies
// are opaque to the server and are never validated or executed by it.
// Single-goroutine access only (action loop).
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	declared []sched.Descriptor
}

// NewEngine creates a Lua engine and loads all system scripts from the
// given directory, in lexical filename order so registration order is
// stable across restarts.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	vm.SetGlobal("register_system", vm.NewFunction(e.luaRegisterSystem))

	systemsPath := filepath.Join(scriptsDir, "systems")
	if err := e.loadDir(systemsPath); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load system scripts: %w", err)
	}

	return e, nil
}

// loadDir loads all .lua files in a directory, sorted by name.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// luaRegisterSystem implements the register_system{...} builtin. A
// missing id or a cadence outside the closed set raises a Lua error,
// which surfaces as a load failure for the whole script.
func (e *Engine) luaRegisterSystem(L *lua.LState) int {
	tbl := L.CheckTable(1)

	idVal := tbl.RawGetString("id")
	id, ok := idVal.(lua.LString)
	if !ok || id == "" {
		L.RaiseError("register_system: missing id")
		return 0
	}

	cadenceVal := tbl.RawGetString("cadence")
	cadence, err := sched.ParseCadence(lua.LVAsString(cadenceVal))
	if err != nil {
		L.RaiseError("register_system %q: %v", string(id), err)
		return 0
	}

	e.declared = append(e.declared, sched.Descriptor{ID: string(id), Cadence: cadence})
	return 0
}

// DeclaredSystems returns the descriptors harvested during script load,
// in registration order.
func (e *Engine) DeclaredSystems() []sched.Descriptor {
	out := make([]sched.Descriptor, len(e.declared))
	copy(out, e.declared)
	return out
}

// Close releases the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
