package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/auto-dns/compose-hosts/internal/app"
	"github.com/auto-dns/compose-hosts/internal/config"
	"github.com/auto-dns/compose-hosts/internal/logger"
)

type contextKey string

const configKey = contextKey("config")

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "compose-hosts",
		Short:         "Show the IP, port and URL of each compose container",
		Long:          "Lists the running containers of a compose project and prints a table with each container's protocol, IP address, port and URL.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if err := config.InitConfig(configPath); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmd.Context().Value(configKey).(*config.Config)

			logInstance := logger.SetupLogger(&cfg.Logging)

			application, err := app.New(cfg, logInstance)
			if err != nil {
				return fmt.Errorf("failed to create app: %w", err)
			}
			defer func() {
				if err := application.Close(); err != nil {
					logInstance.Warn().Err(err).Msg("Closing application")
				}
			}()

			return run(cmd.Context(), application, cmd)
		},
	}

	cmd.Flags().StringP("file", "f", "", "Specify an alternate compose file")
	cmd.PersistentFlags().String("config", "", "config file (default is ./compose-hosts.yaml)")
	cmd.PersistentFlags().String("log-level", "WARN", "set log level (e.g. INFO, DEBUG, WARN)")
	viper.BindPFlag("compose.file", cmd.Flags().Lookup("file"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))

	return cmd
}

func run(ctx context.Context, a application, cmd *cobra.Command) error {
	// Interrupting stops the running external command.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Execution error: %v\n", err)
		os.Exit(1)
	}
}
