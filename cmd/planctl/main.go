// Command planctl performs operator tasks against the incentive ledger:
// migrations, account provisioning, spreadsheet imports and resets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/incentive-ledger/internal/app"
	"github.com/heartmarshall/incentive-ledger/internal/config"
)

// configPath is the --config flag shared by every subcommand.
var configPath string

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "planctl",
		Short:         "Operator tool for the incentive ledger",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(provisionCmd())
	cmd.AddCommand(importCmd())
	cmd.AddCommand(resetCmd())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// openContainer loads configuration and wires the services. The returned
// cleanup must be called once the command is done.
func openContainer(ctx context.Context) (*app.Container, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(cfg.Log)

	c, err := app.Open(ctx, *cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Close() }, nil
}
