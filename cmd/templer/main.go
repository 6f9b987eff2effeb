package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/engine"
	"github.com/lixenwraith/templer/input"
	"github.com/lixenwraith/templer/render"
	"github.com/lixenwraith/templer/systems"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML or TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/templer.log")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "templer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, logFile, err := setupLogging(*debugFlag)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := engine.LoadConfig(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer crashGuard(screen, "TEMPLER")

	screen.HideCursor()

	world := systems.NewWorld(cfg)
	world.SetLogger(logger)

	app := &app{
		game:    engine.NewGame(world, engine.NewMonotonicTimeProvider()),
		machine: input.NewMachine(cfg.Input.HoldWindow),
		surface: render.NewTerminalSurface(screen, cfg.Render.CellWidth, cfg.Render.CellHeight),
		log:     world.Logger(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 256)

	// Input polling blocks on the terminal, it ends once the screen is finalized
	g.Go(func() error {
		defer crashGuard(screen, "EVENT POLLER")
		return pollEvents(ctx, screen, events)
	})

	g.Go(func() error {
		defer crashGuard(screen, "GAME LOOP")
		defer screen.Fini()
		return app.loop(ctx, events)
	})

	return g.Wait()
}

// crashGuard restores the terminal and prints the panic, deferred at the top of every goroutine
func crashGuard(screen tcell.Screen, where string) {
	if r := recover(); r != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31m%s CRASHED: %v\x1b[0m\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}

// pollEvents forwards terminal events until the screen is finalized or ctx ends
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// app is the single goroutine allowed to touch the game
type app struct {
	game    *engine.Game
	machine *input.Machine
	surface *render.TerminalSurface
	log     *zerolog.Logger
}

// loop drives the tick and frame pacers and applies input until quit
func (a *app) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(constants.PollInterval)
	defer ticker.Stop()

	a.start()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !a.handleEvent(ev, time.Now()) {
				return nil
			}

		case now := <-ticker.C:
			a.step(now)
		}
	}
}

// step releases expired keys, advances the simulation and draws when a frame is due
func (a *app) step(now time.Time) {
	for _, d := range a.machine.Expire(now) {
		a.game.RemoveForce(d)
	}

	a.game.Advance()

	if a.game.FrameDue() {
		a.redraw()
	}
}

// handleEvent applies one terminal event, returns false on quit
func (a *app) handleEvent(ev tcell.Event, now time.Time) bool {
	intent := a.machine.Process(ev, now)
	if intent.Type != input.IntentNone {
		a.log.Debug().
			Str("intent", intent.Type.String()).
			Str("direction", intent.Direction.String()).
			Msg("input")
	}

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		a.surface.Sync()
		a.redraw()

	case input.IntentForce:
		a.game.ApplyForce(intent.Direction)

	case input.IntentPause:
		a.game.Pause(!a.game.IsPaused())

	case input.IntentFramePause:
		a.game.PauseFrames(!a.game.FramesPaused())

	case input.IntentReset:
		for _, d := range a.machine.Release() {
			a.game.RemoveForce(d)
		}
		a.game.Reset()
		a.redraw()
	}
	return true
}

// start fits the world to the terminal and places a fresh run for that size
// before the first tick
func (a *app) start() {
	a.game.World.Resize(a.surface.Size())
	a.game.Reset()
	a.redraw()
}

// redraw fits the world to the terminal and paints a frame, skipped while frames are paused
func (a *app) redraw() {
	if a.game.FramesPaused() {
		return
	}
	a.game.World.Resize(a.surface.Size())
	render.Frame(a.surface, a.game)
}
