package ui

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/lanechart/core/tick"
	game_log "github.com/ingyamilmolinar/lanechart/internal/log"
)

// HostConfig controls how a Viewer is driven.
type HostConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
	Ticks  uint64 // headless only: stop after this many frames, 0 runs until cancelled
}

func DefaultHostConfig() HostConfig {
	return HostConfig{
		Title:  "lanechart",
		Width:  960,
		Height: 540,
		TPS:    tick.DefaultTPS,
	}
}

// RunWindow opens a resizable window and blocks until it is closed.
func RunWindow(v *Viewer, cfg HostConfig, logger *game_log.Logger) error {
	if logger == nil {
		logger = game_log.Discard()
	}
	g := NewGame(v, logger)
	defer g.HUD().Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	logger.With("HOST").Infof("Opening %dx%d window", cfg.Width, cfg.Height)
	return ebiten.RunGame(g)
}

// RunHeadless ticks v without a window. It returns nil after cfg.Ticks
// frames, or the context error when ctx ends first.
func RunHeadless(ctx context.Context, v *Viewer, cfg HostConfig, logger *game_log.Logger) error {
	if logger == nil {
		logger = game_log.Discard()
	}
	if cfg.TPS <= 0 {
		cfg.TPS = tick.DefaultTPS
	}
	log := logger.With("HOST")

	sched := tick.NewScheduler(cfg.TPS)
	var done uint64
	sched.OnTick = func(frames float64) {
		// a late catch-up must not run past the frame limit
		if cfg.Ticks > 0 {
			frames = math.Min(frames, float64(cfg.Ticks-done))
		}
		done += uint64(frames)
		v.Tick(frames)
	}
	d := sched.Interval()
	if d <= 0 {
		return fmt.Errorf("invalid headless tps: %d", cfg.TPS)
	}

	t := time.NewTicker(d)
	defer t.Stop()
	sched.Start()
	defer sched.Stop()
	log.Infof("Running headless at %d tps", cfg.TPS)

	for {
		if cfg.Ticks > 0 && done >= cfg.Ticks {
			log.Infof("Stopped after %d of %d due frames at page %.2f", done, sched.Frames(), v.Page())
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			sched.Tick()
		}
	}
}
