// Package cli wires the lanechart commands.
package cli

import (
	"os"

	"github.com/ingyamilmolinar/lanechart/core/chart"
	"github.com/ingyamilmolinar/lanechart/core/model"
	game_log "github.com/ingyamilmolinar/lanechart/internal/log"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = game_log.New(os.Stderr, game_log.LevelInfo)
)

var rootCmd = &cobra.Command{
	Use:   "lanechart",
	Short: "Three-lane rhythm chart viewer",
	Long: `lanechart renders rhythm-game charts on a perspective plane,
serves them over HTTP and prints their computed layout.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(game_log.LevelFromString(logLevel))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, error or none")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func loadChart(path string) (model.Chart, error) {
	return chart.NewLoader(logger).Load(path)
}
