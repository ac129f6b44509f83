package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/config"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/logging"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/server"
	"github.com/muhammadsalmanfarrisi/Rumah-Sakit/internal/util"
)

func newServeCmd(load configLoader) *cobra.Command {
	var (
		port        int
		devMode     bool
		dataDir     string
		openBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the upload web application",
		Long: `Run the upload web application.

The port in config.toml wins over --port; --port only applies when the file
does not set one.

Example: rekap serve --port 5500 --data-dir /var/lib/rekap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, info, err := load()
			if err != nil {
				return err
			}

			if port > 0 && !info.PortSpecified {
				cfg.Server.Port = port
			}
			if devMode {
				cfg.Server.DevMode = true
			}
			if dataDir != "" {
				cfg.Data.DataDir = dataDir
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			log := logging.New(cfg.Log)
			if info.FromFile {
				log.Info().Str("path", info.ConfigPath).Msg("config loaded")
			}

			dir, err := config.EnsureDataDir(cfg)
			if err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			log.Info().Str("data_dir", dir).Msg("data directory ready")

			srv := server.NewServer(cfg, log, version)
			url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Info().Str("addr", srv.Addr()).Msg("listening")
				return srv.Run()
			})
			g.Go(func() error {
				<-ctx.Done()
				log.Info().Msg("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			if openBrowser && !cfg.Server.DevMode {
				if err := util.OpenBrowser(url); err != nil {
					log.Warn().Err(err).Msgf("open %s manually", url)
				}
			} else {
				log.Info().Msgf("open %s", url)
			}

			return g.Wait()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (used when config.toml sets none)")
	cmd.Flags().BoolVar(&devMode, "dev", false, "development mode (gin debug output)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory for uploads and results")
	cmd.Flags().BoolVar(&openBrowser, "open", true, "open the browser after start")
	return cmd
}
