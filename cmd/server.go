package cmd

import (
	"context"
	"errors"
	httpNet "net/http"
	"os"
	"os/signal"
	"signal-relay/internal/delivery/http"
	"signal-relay/internal/repository"
	"signal-relay/internal/service"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Connect to the broker, then serve POST /signal",
	RunE:  Start,
}

// Start never opens the listener before the broker connection is up. A failed
// connection is returned to cobra and ends the process with a non-zero status.
func Start(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(runContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		return err
	}
	defer appDep.Close()

	repo := repository.NewRepository(appDep.log, appDep.redis)
	services := service.NewService(appDep.cfg, appDep.log, repo)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.log, services)
	apiServer := NewHTTPServer(ctx, appDep, httpHandler)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appDep.redis.WatchErrors(gctx)
		return nil
	})

	g.Go(func() error {
		if err := apiServer.Start(); err != nil && !errors.Is(err, httpNet.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			appDep.log.Info("Shutting down gracefully...")
		}
		return apiServer.Stop()
	})

	return g.Wait()
}

func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
