package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pwned/internal/fixture"
	"pwned/internal/logging"
	"pwned/internal/mockapi"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr          string
		fixturesPath  string
		writeFixtures string
		rateLimit     uint64
		logLevel      string
		logFormat     string
	)

	cmd := &cobra.Command{
		Use:          "mockapi",
		Short:        "Serve a simulated breach and password API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if writeFixtures != "" {
				if err := fixture.Save(writeFixtures, fixture.Default()); err != nil {
					return err
				}
				log.Info("wrote sample fixtures", zap.String("path", writeFixtures))
				return nil
			}

			data, err := fixture.Load(fixturesPath)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr: addr,
				Handler: mockapi.New(data,
					mockapi.WithLogger(logging.WithComponent(log, "mockapi")),
					mockapi.WithRateLimitEvery(rateLimit),
				).Routes(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return serve(cmd.Context(), srv, log)
		},
	}

	f := cmd.Flags()
	f.StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	f.StringVar(&fixturesPath, "fixtures", "", "fixture dataset JSON (default: built-in sample)")
	f.StringVar(&writeFixtures, "write-fixtures", "", "write the built-in sample dataset to this path and exit")
	f.Uint64Var(&rateLimit, "rate-limit-every", 0, "answer every Nth breach request with 429 (0 disables)")
	f.StringVar(&logLevel, "log-level", "info", "log level")
	f.StringVar(&logFormat, "log-format", "console", "log format: console or json")
	return cmd
}

func serve(ctx context.Context, srv *http.Server, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("mock API listening",
		zap.String("addr", srv.Addr),
		zap.String("service_url", "http://"+srv.Addr+"/api/"),
		zap.String("passwords_url", "http://"+srv.Addr+"/"),
	)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
