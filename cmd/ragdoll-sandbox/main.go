package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ragdoll-sandbox/audio"
	"github.com/lixenwraith/ragdoll-sandbox/config"
	"github.com/lixenwraith/ragdoll-sandbox/engine"
	"github.com/lixenwraith/ragdoll-sandbox/event"
	"github.com/lixenwraith/ragdoll-sandbox/physics"
	"github.com/lixenwraith/ragdoll-sandbox/scene"
	"github.com/lixenwraith/ragdoll-sandbox/status"
)

func main() {
	configPath := flag.String("config", "", "TOML config file overlaid on defaults")
	logPath := flag.String("log", "", "log file (default: config sandbox.log_file, discard if empty)")
	seed := flag.Int64("seed", 0, "particle and terrain seed (default: config sandbox.seed)")
	mute := flag.Bool("mute", false, "start with sound disabled")
	flag.Parse()

	if err := run(*configPath, *logPath, *seed, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "ragdoll-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, seed int64, mute bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logPath == "" {
		logPath = cfg.Sandbox.LogFile
	}
	if seed == 0 {
		seed = cfg.Sandbox.Seed
	}

	logger, closeLog, err := openLogger(logPath, cfg.Sandbox)
	if err != nil {
		return err
	}
	defer closeLog()

	queue := event.NewQueue()
	reg := status.NewRegistry()
	defer logger.Info("session ended", "metrics", reg)

	worldOpts := []physics.Option{
		physics.WithLogger(logger),
		physics.WithEventQueue(queue),
		physics.WithStatus(reg),
	}
	if seed != 0 {
		worldOpts = append(worldOpts, physics.WithSeed(uint64(seed)))
	}
	world := physics.NewWorld(cfg, worldOpts...)
	builder := scene.NewBuilder(world,
		scene.WithLogger(logger),
		scene.WithEventQueue(queue),
		scene.WithStatus(reg),
	)

	sound := audio.NewSoundManager(&cfg.Audio, logger)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the sandbox runs silent
		logger.Warn("audio unavailable", "error", err)
	}
	defer sound.Cleanup()
	if mute {
		sound.SetEnabled(false)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			handleCrash(screen, r)
		}
	}()
	screen.EnableMouse()
	screen.HideCursor()

	sb := newSandbox(screen, builder, sound, reg, seed, logger)

	runner := engine.NewRunner(world, queue,
		engine.WithInterval(cfg.TickInterval()),
		engine.WithLogger(logger),
		engine.WithStatus(reg),
		engine.WithTickHook(sb.tickHook),
		engine.WithRender(sb.draw),
	)
	runner.RegisterEventHandler(sound)
	runner.RegisterEventHandler(engine.HandlerFunc{
		Types: []event.EventType{event.EventTargetReached, event.EventCoinCollected, event.EventUndo},
		Fn:    sb.onEvent,
	})
	sb.runner = runner

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		runErr <- runner.Run(ctx)
		cancel()
	}()

	inputCh := make(chan tcell.Event, 32)
	goSafe(screen, func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case inputCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			// Runner exited on its own, most likely a recovered panic
			return <-runErr
		case ev := <-inputCh:
			if !sb.handleInput(ev) {
				cancel()
				return <-runErr
			}
		}
	}
}

// openLogger returns a text logger writing to path, or a discarding logger when path is empty
func openLogger(path string, sc config.SandboxConfig) (*slog.Logger, func(), error) {
	level, err := sc.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
