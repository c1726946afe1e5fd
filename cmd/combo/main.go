package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/combo/internal/app"
	"github.com/five82/combo/internal/config"
	"github.com/five82/combo/internal/prefs"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "combo: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options
	var debug bool

	cmd := &cobra.Command{
		Use:           "combo",
		Short:         "Accessible single-choice combobox demo",
		Long:          "combo renders a form of comboboxes defined in " + config.DefaultPath() + ".\nUse Tab to move between fields and ? for key help.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if debug && opts.LogPath == "" {
				opts.LogPath = "combo-debug.log"
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "form config path (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences path (default "+prefs.DefaultPath()+")")
	flags.StringVar(&opts.Theme, "theme", "", "theme for this run: Nightfox, Kanagawa or Slate")
	flags.BoolVar(&debug, "debug", false, "write debug logs to combo-debug.log")
	flags.StringVar(&opts.LogPath, "log-file", "", "debug log path (implies --debug)")
	return cmd
}
