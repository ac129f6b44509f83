package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "rekap",
		Short:         "Recap hospital guarantee-letter exports into a summary workbook",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default: next to the executable)")

	load := func() (*config.AppConfig, config.LoadConfigInfo, error) {
		return config.LoadConfigWithInfo(configPath)
	}

	rootCmd.AddCommand(
		newServeCmd(load),
		newReportCmd(load),
		newConfigCmd(&configPath),
	)
	return rootCmd
}

type configLoader func() (*config.AppConfig, config.LoadConfigInfo, error)
