package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/itsmostafa/tocview/internal/api"
	"github.com/itsmostafa/tocview/internal/config"
	"github.com/itsmostafa/tocview/internal/source"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Serve the table of contents over HTTP",
	Long:  `Serve the dataset, its tree and search results as JSON. Settings come from TOCVIEW_* environment variables.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := serveConfig(args)
		if err != nil {
			return err
		}

		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		if cfg.Debug || verbose {
			log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		data, err := source.LoadFile(cfg.DataPath)
		if err != nil {
			return err
		}
		srv, err := api.NewServer(data, log, cfg)
		if err != nil {
			return err
		}

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting tocview", "port", cfg.Port, "data", cfg.DataPath)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	},
}

// serveConfig loads the environment config and applies the file argument and
// --port override on top of it.
func serveConfig(args []string) (config.Config, error) {
	cfg := config.Load()
	if len(args) > 0 {
		cfg.DataPath = args[0]
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (default: TOCVIEW_PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}
