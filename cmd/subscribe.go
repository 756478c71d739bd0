package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var subscribeChannel string

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Print every message published on the signal channel",
	RunE:  Subscribe,
}

func init() {
	subscribeCmd.Flags().StringVar(&subscribeChannel, "channel", "", "channel to listen on (defaults to redis.channel)")
}

func Subscribe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(runContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := newBrokerDependency(ctx)
	if err != nil {
		return err
	}
	defer appDep.Close()

	channel := appDep.cfg.Redis.Channel
	if subscribeChannel != "" {
		channel = subscribeChannel
	}

	out := cmd.OutOrStdout()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appDep.redis.WatchErrors(gctx)
		return nil
	})

	g.Go(func() error {
		defer stop()
		return appDep.redis.Subscribe(gctx, channel, func(_ context.Context, _ string, payload []byte) error {
			_, err := fmt.Fprintln(out, string(payload))
			return err
		})
	})

	return g.Wait()
}
