package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "signal-relay",
	Short:        "Relay trading signals from HTTP to a Redis pub/sub channel",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file (default ./config.yaml when present)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(subscribeCmd)
	rootCmd.AddCommand(sendCmd)
}
