package cli

import (
	"os/signal"
	"syscall"

	"github.com/ingyamilmolinar/lanechart/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve <chart>",
	Short: "Serves a chart as JSON",
	Long:  `Serves the parsed chart on GET /chart and single notes on GET /chart/notes/{index}.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart(args[0])
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return server.New(c, logger).ListenAndServe(ctx, serveAddr)
	},
}
