package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"logmux/internal/config"
	"logmux/internal/sink"
	"logmux/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "logmux",
		Short: "Logmux is a character-stream log multiplexer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			fileCfg := config.File{}
			if cfgPath != "" {
				loaded, err := config.LoadFile(cfgPath)
				if err != nil {
					return err
				}
				fileCfg = loaded
			}
			if v, _ := cmd.Flags().GetString("listen"); v != "" {
				fileCfg.Listen = v
			}
			if v, _ := cmd.Flags().GetString("state"); v != "" {
				fileCfg.StatePath = v
			}
			if v, _ := cmd.Flags().GetString("system"); v != "" {
				fileCfg.SystemName = v
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			limits := config.DefaultLimits()

			if headless, _ := cmd.Flags().GetBool("headless"); headless {
				return runHeadless(fileCfg, limits, verbose)
			}
			noColor, _ := cmd.Flags().GetBool("no-color")
			return ui.Run(noColor, fileCfg, limits, verbose)
		},
	}

	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().String("config", "", "Path to YAML config file")
	rootCmd.Flags().String("listen", "", "Ingest listen address (host:port)")
	rootCmd.Flags().String("state", "", "Path to persisted sink configuration")
	rootCmd.Flags().String("system", "", "System name reported to HTTP sinks")
	rootCmd.Flags().Bool("no-color", false, "Disable color output")
	rootCmd.Flags().Bool("headless", false, "Run without the terminal monitor, writing the stream to stdout")
	rootCmd.Flags().Bool("verbose", false, "Emit diagnostic lines on the primary sink")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runHeadless serves ingest with stdout as the primary sink until
// interrupted.
func runHeadless(fileCfg config.File, limits config.Limits, verbose bool) error {
	console := sink.NewConsole(os.Stdout)
	rt, err := ui.NewRuntime(fileCfg, limits, console, verbose)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr, err := rt.Start(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "logmux listening on %s\n", addr)

	<-ctx.Done()
	return nil
}
