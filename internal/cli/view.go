package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ingyamilmolinar/lanechart/internal/ui"
	"github.com/spf13/cobra"
)

var viewFlags struct {
	debug    bool
	smooth   bool
	headless bool
	host     ui.HostConfig
}

func init() {
	def := ui.DefaultHostConfig()
	f := viewCmd.Flags()
	f.BoolVar(&viewFlags.debug, "debug", false, "mix the built-in fixture notes into the chart")
	f.BoolVar(&viewFlags.smooth, "smooth", false, "ease scrolling instead of jumping a page at a time")
	f.BoolVar(&viewFlags.headless, "headless", false, "tick the viewer without opening a window")
	f.Uint64Var(&viewFlags.host.Ticks, "ticks", 0, "headless: stop after this many frames (0 runs until interrupted)")
	f.IntVar(&viewFlags.host.TPS, "tps", def.TPS, "frames per second")
	f.IntVar(&viewFlags.host.Width, "width", def.Width, "window width")
	f.IntVar(&viewFlags.host.Height, "height", def.Height, "window height")
	f.StringVar(&viewFlags.host.Title, "title", def.Title, "window title")
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view [chart]",
	Short: "Opens a chart in the viewer",
	Long: `Opens a .chart, .json, .mid or .midi file in the viewer. Without an
argument a file picker is shown.

Space plays and pauses, the wheel scrolls a page at a time, clicking a note
shows its details.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			if viewFlags.headless {
				return fmt.Errorf("a chart path is required with --headless")
			}
			p, err := pickChart()
			if err != nil {
				return fmt.Errorf("pick chart: %w", err)
			}
			path = p
		}

		c, err := loadChart(path)
		if err != nil {
			if !viewFlags.headless {
				reportError("Could not open chart", err)
			}
			return err
		}

		host := viewFlags.host
		v, err := ui.New(
			ui.FixedContainer{Width: host.Width, Height: host.Height},
			c.Notes, c.Sections,
			ui.Options{Debug: viewFlags.debug, Smooth: viewFlags.smooth, Logger: logger},
		)
		if err != nil {
			return err
		}

		if viewFlags.headless {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := ui.RunHeadless(ctx, v, host, logger); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		}
		return ui.RunWindow(v, host, logger)
	},
}
