package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dieuclat/storefront/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Dieuclat gifting storefront",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		slog.SetLogLoggerLevel(loaded.LogLevel)
		cfg = loaded
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
