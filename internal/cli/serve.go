package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/server"
)

// serveCommand samples in the background and serves until interrupted.
func serveCommand(cmd *cobra.Command, listen string) error {
	addr := appConfig.Server.Listen
	if listen != "" {
		addr = listen
	}

	engine := newEngine(appConfig, false)
	srv := server.NewServer(engine,
		server.WithListen(addr),
		server.WithLogger(logger.New("server")),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sampling := make(chan struct{})
	go func() {
		defer close(sampling)
		_ = engine.Run(ctx, appConfig.Interval)
	}()

	fmt.Fprintf(cmd.ErrOrStderr(), "Serving on http://%s (Ctrl+C to stop)\n", addr)
	err := srv.Start(ctx)
	cancel()
	<-sampling
	return err
}
