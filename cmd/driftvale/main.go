package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/driftvale/server/internal/clock"
	"github.com/driftvale/server/internal/config"
	"github.com/driftvale/server/internal/data"
	"github.com/driftvale/server/internal/event"
	"github.com/driftvale/server/internal/persist"
	"github.com/driftvale/server/internal/registry"
	"github.com/driftvale/server/internal/sched"
	"github.com/driftvale/server/internal/scripting"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("DRIFTVALE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.Info("driftvale starting",
		zap.String("world", cfg.Server.Name),
		zap.Int32("world_id", cfg.Server.WorldID))

	// 3. Connect to PostgreSQL and run migrations
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := persist.NewDB(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	if err := persist.RunMigrations(ctx, db.Pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	log.Info("database ready")

	// 4. Build the system registry: YAML manifest first, then Lua
	// script declarations, so manifest systems always dispatch first.
	reg := registry.New()

	manifest, err := data.LoadSystemTable(cfg.Simulation.ManifestPath)
	if err != nil {
		return fmt.Errorf("load system manifest: %w", err)
	}
	for _, d := range manifest.All() {
		reg.Add(d.ID, d.Cadence)
	}
	log.Info("manifest systems registered", zap.Int("count", manifest.Count()))

	luaEngine, err := scripting.NewEngine(cfg.Simulation.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	for _, d := range luaEngine.DeclaredSystems() {
		reg.Add(d.ID, d.Cadence)
	}
	log.Info("scripted systems registered", zap.Int("count", len(luaEngine.DeclaredSystems())))

	// 5. Create the dispatch engine and restore the persisted clock.
	engine := sched.NewEngine(reg)
	snapshots := persist.NewSnapshotRepo(db, cfg.Server.WorldID)
	if snap, ok, err := snapshots.Load(ctx); err != nil {
		return fmt.Errorf("restore clock: %w", err)
	} else if ok {
		engine.SetContext(snap)
		log.Info("clock restored",
			zap.Int64("tick", snap.Tick),
			zap.Int64("hours", snap.Hours),
			zap.Int64("days", snap.Days))
	} else {
		log.Info("no snapshot, starting at epoch 0")
	}

	// 6. Wire the advance feed: the recorder persists last action's
	// dispatches while the current action is processed.
	feed := event.NewFeed()
	dispatchLog := persist.NewDispatchLogRepo(db, cfg.Server.WorldID)
	feed.Subscribe(func(ev event.Advance) {
		logCtx, logCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer logCancel()
		if err := dispatchLog.Append(logCtx, ev.Context.Tick, ev.Due); err != nil {
			log.Warn("dispatch log append failed", zap.Int64("tick", ev.Context.Tick), zap.Error(err))
		}
	})

	// 7. Run the action loop. The ticker only paces simulated player
	// actions; the clock itself is a pure function of the action count.
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Simulation.ActionInterval)
	defer ticker.Stop()

	log.Info("action loop started",
		zap.Duration("interval", cfg.Simulation.ActionInterval),
		zap.Int("registered_systems", reg.Count()))

	saveCounter := 0
	for {
		select {
		case <-ticker.C:
			feed.SwapBuffers()
			feed.DispatchAll()

			tc, due := engine.Advance()
			feed.Emit(event.Advance{Context: tc, Due: due})

			for _, d := range due {
				log.Debug("system due",
					zap.String("system", d.ID),
					zap.String("cadence", string(d.Cadence)),
					zap.Int64("tick", tc.Tick))
			}
			if tc.Tick%actionsPerDay == 0 {
				log.Info("simulated day complete", zap.Int64("days", tc.Days), zap.Int64("tick", tc.Tick))
			}

			saveCounter++
			if saveCounter >= cfg.Simulation.SaveEveryActions {
				saveCounter = 0
				saveSnapshot(engine, snapshots, log)
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			saveSnapshot(engine, snapshots, log)
			log.Info("world stopped")
			return nil
		}
	}
}

// one simulated day, in actions
const actionsPerDay = clock.ActionsPerHour * clock.HoursPerDay

func saveSnapshot(engine *sched.Engine, snapshots *persist.SnapshotRepo, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tc := engine.GetContext()
	if err := snapshots.Save(ctx, tc); err != nil {
		log.Error("snapshot save failed", zap.Int64("tick", tc.Tick), zap.Error(err))
		return
	}
	log.Info("clock snapshot saved", zap.Int64("tick", tc.Tick), zap.Int64("days", tc.Days))
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
